package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/pcm"
)

type Decoder struct{}

// Decode reads a complete WAV file and returns it as a Sound in the
// fixed stream format. Mono files are duplicated into both channels.
func (Decoder) Decode(r io.Reader) (*audio.Sound, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}
	if len(buf.Data) == 0 {
		return nil, ErrNoAudioData
	}

	samples, err := stereoSamples(buf.Data, int(dec.NumChans))
	if err != nil {
		return nil, err
	}

	return audio.NewSound(samples, int(dec.SampleRate)), nil
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
