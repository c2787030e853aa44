package audio

import "github.com/ik5/sndbuf/pcm"

// rampSamples returns n samples counting up from zero, so any copy can
// be traced back to its source position.
func rampSamples(n int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(i)
	}

	return s
}

// rampFiller produces an endless sample ramp and records the frame
// count of every span it is handed.
type rampFiller struct {
	next  int16
	calls []int
}

func (f *rampFiller) fill(dst []byte, frames int) {
	f.calls = append(f.calls, frames)

	s := make([]int16, frames*pcm.Channels)
	for i := range s {
		s[i] = f.next
		f.next++
	}
	pcm.EncodeSamples(dst, s)
}
