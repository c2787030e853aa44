// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams into in-memory Sounds. The decoder emits float32 samples;
// they are converted to the fixed interleaved stereo int16 format on
// the way in, with mono streams duplicated into both channels.
//
// # Decoding Ogg Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	snd, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
//   - Streams with more than two channels are rejected
package vorbis
