package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/pcm"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads a complete AIFF file and returns it as a Sound in the
// fixed stream format. Mono files are duplicated into both channels.
func (Decoder) Decode(r io.Reader) (*audio.Sound, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return decodeAll(dec, format.NumChannels, format.SampleRate)
}

func decodeAll(dec aiffReader, channels, rate int) (*audio.Sound, error) {
	var data []int
	buf := &goaudio.IntBuffer{Data: make([]int, 8192), Format: dec.Format()}
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding aiff data: %w", err)
		}
		data = append(data, buf.Data[:n]...)
		if err == io.EOF || n < len(buf.Data) {
			break
		}
	}

	samples, err := stereoSamples(data, channels)
	if err != nil {
		return nil, err
	}

	return audio.NewSound(samples, rate), nil
}

// stereoSamples normalizes decoded PCM into the fixed interleaved
// stereo layout, duplicating mono into both channels.
func stereoSamples(data []int, channels int) ([]int16, error) {
	switch channels {
	case 1:
		out := make([]int16, len(data)*pcm.Channels)
		for i, v := range data {
			s := int16(v)
			out[2*i] = s
			out[2*i+1] = s
		}

		return out, nil
	case pcm.Channels:
		out := make([]int16, len(data))
		for i, v := range data {
			out[i] = int16(v)
		}

		return out, nil
	default:
		return nil, ErrUnsupportedChannelCount
	}
}
