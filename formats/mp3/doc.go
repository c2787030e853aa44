// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files
// into in-memory Sounds.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Stereo output (go-mp3 upmixes mono internally)
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	file, _ := os.Open("audio.mp3")
//	snd, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Decode consumes the whole stream; the returned Sound holds the entire
// clip as interleaved stereo int16 at the file's own sample rate.
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - The full clip is decoded up front, so memory use is proportional
//     to the length of the file
package mp3
