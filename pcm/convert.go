// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
)

// EncodeSamples writes src as little-endian int16 bytes into dst and
// returns the byte count written. dst must hold at least
// SamplesToBytes(len(src)) bytes.
func EncodeSamples(dst []byte, src []int16) int {
	n := SamplesToBytes(len(src))
	if len(dst) < n {
		panic(fmt.Sprintf("pcm: dst holds %d bytes, need %d", len(dst), n))
	}
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[i*SampleBytes:], uint16(s))
	}
	return n
}

// DecodeSamples reads little-endian int16 bytes from src into dst and
// returns the sample count decoded. len(src) must be sample-aligned and
// dst must hold BytesToSamples(len(src)) samples.
func DecodeSamples(dst []int16, src []byte) int {
	n := BytesToSamples(len(src))
	if len(dst) < n {
		panic(fmt.Sprintf("pcm: dst holds %d samples, need %d", len(dst), n))
	}
	for i := 0; i < n; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(src[i*SampleBytes:]))
	}
	return n
}

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
