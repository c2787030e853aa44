// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/pcm"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode reads a complete MP3 stream and returns it as a Sound. go-mp3
// always emits 16-bit little-endian stereo, which is already the fixed
// stream format, so the decoded bytes are taken as they are.
func (Decoder) Decode(r io.Reader) (*audio.Sound, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (*audio.Sound, error) {
	var data []byte
	buf := make([]byte, 8192)
	for {
		n, err := dec.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding mp3 data: %w", err)
		}
	}

	if len(data)%pcm.FrameBytes != 0 {
		return nil, fmt.Errorf("mp3 stream ends mid frame at %d bytes", len(data))
	}

	samples := make([]int16, pcm.BytesToSamples(len(data)))
	pcm.DecodeSamples(samples, data)

	return audio.NewSound(samples, dec.SampleRate()), nil
}
