package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/pcm"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode reads a complete Ogg Vorbis stream and returns it as a Sound
// in the fixed stream format. Mono streams are duplicated into both
// channels.
func (Decoder) Decode(r io.Reader) (*audio.Sound, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec oggReader) (*audio.Sound, error) {
	channels := dec.Channels()
	if channels != 1 && channels != pcm.Channels {
		return nil, fmt.Errorf("vorbis stream has %d channels, want mono or stereo", channels)
	}

	// Read counts float32 values, not frames, and always returns whole
	// frames worth of them.
	var floats []float32
	buf := make([]float32, 8192)
	for {
		n, err := dec.Read(buf)
		floats = append(floats, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis data: %w", err)
		}
	}

	samples := make([]int16, 0, len(floats)*pcm.Channels/channels)
	for _, f := range floats {
		s := pcm.Float32ToInt16(f)
		samples = append(samples, s)
		if channels == 1 {
			samples = append(samples, s)
		}
	}

	return audio.NewSound(samples, dec.SampleRate()), nil
}
