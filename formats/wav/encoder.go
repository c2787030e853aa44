// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/pcm"
)

// Save writes snd to ws as a PCM 16-bit stereo WAV file. The writer
// must seek because the RIFF sizes are patched once the data length is
// known.
func Save(ws io.WriteSeeker, snd *audio.Sound) error {
	enc := gowav.NewEncoder(ws, snd.Rate, 16, pcm.Channels, 1)

	data := make([]int, len(snd.Samples))
	for i, s := range snd.Samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			NumChannels: pcm.Channels,
			SampleRate:  snd.Rate,
		},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}

	return nil
}
