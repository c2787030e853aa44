// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"

	"github.com/ik5/sndbuf/pcm"
)

// Sound is a bounded clip held entirely in memory: interleaved stereo
// 16-bit samples plus the rate they were captured or decoded at. The
// slice is owned by the Sound; callers that need an independent copy
// should go through a CopyBuffer.
type Sound struct {
	// Samples holds interleaved stereo frames, left sample first.
	Samples []int16
	// Rate is the sample rate in frames per second, such as 44100.
	Rate int
}

// NewSound wraps samples and a rate in a Sound. It panics if the slice
// does not hold a whole number of frames.
func NewSound(samples []int16, rate int) *Sound {
	if len(samples)%pcm.Channels != 0 {
		panic(fmt.Sprintf("audio: %d samples is not a whole number of frames", len(samples)))
	}

	return &Sound{Samples: samples, Rate: rate}
}

// Frames returns the length of the sound in frames.
func (s *Sound) Frames() int {
	return len(s.Samples) / pcm.Channels
}

// Duration returns the playing time of the sound at its own rate. A
// sound with no rate set reports zero.
func (s *Sound) Duration() time.Duration {
	if s.Rate <= 0 {
		return 0
	}

	return time.Duration(s.Frames()) * time.Second / time.Duration(s.Rate)
}
