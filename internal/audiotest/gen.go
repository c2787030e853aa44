// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic sample data for tests and
// examples.
package audiotest

import "math"

// The generators produce interleaved stereo int16 frames, the engine's
// fixed stream format, without importing it (to avoid cycles).
const channels = 2

// SineSamples returns frames of a sine tone at freq Hz for the given
// sample rate, identical in both channels.
func SineSamples(sampleRate, frames int, freq float64) []int16 {
	s := make([]int16, frames*channels)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767)
		s[channels*i] = v
		s[channels*i+1] = v
	}

	return s
}

// ConstantSamples returns frames holding value in every sample.
func ConstantSamples(frames int, value int16) []int16 {
	s := make([]int16, frames*channels)
	for i := range s {
		s[i] = value
	}

	return s
}

// SilenceSamples returns frames of silence.
func SilenceSamples(frames int) []int16 {
	return make([]int16, frames*channels)
}

// RampSamples returns samples counting up from zero, so any copy can be
// traced back to its source position.
func RampSamples(frames int) []int16 {
	s := make([]int16, frames*channels)
	for i := range s {
		s[i] = int16(i)
	}

	return s
}
