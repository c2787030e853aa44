// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into
// in-memory Sounds. AIFF is Apple's standard audio file format,
// commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF (Audio Interchange File Format)
//   - PCM 16-bit (most common)
//   - Mono and stereo
//   - Any sample rate
//
// Decoded audio always comes back in the engine's fixed stream format:
// interleaved stereo int16. Mono files are duplicated into both
// channels.
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	file, _ := os.Open("audio.aif")
//	snd, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: the file is not 16-bit PCM
//   - ErrUnsupportedAiffLayout: the file structure cannot be read
//   - ErrUnsupportedChannelCount: more than two channels
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - AIFF-C compressed variants are not supported
package aiff
