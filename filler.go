package sndbuf

import (
	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/pcm"
)

// SoundFiller streams a Sound into a ring, encoding frames on demand
// and padding with silence once the sound runs out. Its Fill method
// satisfies audio.FillFunc.
type SoundFiller struct {
	snd *audio.Sound
	pos int // samples already encoded
}

// NewSoundFiller returns a filler that streams snd from its first frame.
func NewSoundFiller(snd *audio.Sound) *SoundFiller {
	return &SoundFiller{snd: snd}
}

// Fill encodes up to frames frames of the sound into dst and zero-pads
// whatever the sound can no longer cover. It never blocks and never
// allocates.
func (f *SoundFiller) Fill(dst []byte, frames int) {
	want := frames * pcm.Channels
	c := min(want, len(f.snd.Samples)-f.pos)

	n := 0
	if c > 0 {
		n = pcm.EncodeSamples(dst, f.snd.Samples[f.pos:f.pos+c])
		f.pos += c
	}

	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Exhausted reports whether every sample of the sound has been encoded.
func (f *SoundFiller) Exhausted() bool {
	return f.pos == len(f.snd.Samples)
}

// FramesWritten returns the number of whole frames encoded so far.
func (f *SoundFiller) FramesWritten() int {
	return f.pos / pcm.Channels
}
