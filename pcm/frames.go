// Package pcm defines the engine's fixed stream format and the arithmetic
// between its three units: samples, frames, and bytes.
package pcm

import "fmt"

// The fixed stream format: two channels of interleaved signed 16-bit
// little-endian PCM. One frame carries one sample per channel.
const (
	Channels    = 2
	SampleBytes = 2
	FrameBytes  = Channels * SampleBytes
)

// FramesToBytes returns the storage size of frames frames.
func FramesToBytes(frames int) int {
	return frames * FrameBytes
}

// BytesToFrames returns how many whole frames n bytes hold.
// A byte count that is not frame-aligned is a caller bug; the conversion
// panics rather than rounding.
func BytesToFrames(n int) int {
	if n%FrameBytes != 0 {
		panic(fmt.Sprintf("pcm: %d bytes is not a whole number of frames", n))
	}
	return n / FrameBytes
}

// SamplesToBytes returns the storage size of n samples.
func SamplesToBytes(n int) int {
	return n * SampleBytes
}

// BytesToSamples returns how many whole samples n bytes hold, panicking on
// a misaligned count like BytesToFrames.
func BytesToSamples(n int) int {
	if n%SampleBytes != 0 {
		panic(fmt.Sprintf("pcm: %d bytes is not a whole number of samples", n))
	}
	return n / SampleBytes
}
