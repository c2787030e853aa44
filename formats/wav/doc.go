// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package reads and writes WAV files in PCM 16-bit format. It uses
// the github.com/go-audio library for RIFF chunk handling.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit (most common WAV format)
//   - Mono and stereo
//   - Any sample rate
//
// Decoded audio always comes back in the engine's fixed stream format:
// interleaved stereo int16. Mono files are duplicated into both
// channels.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	file, _ := os.Open("audio.wav")
//	snd, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(snd.Frames(), snd.Rate)
//
// Decode consumes the whole file; the returned Sound is independent of
// the reader.
//
// # Writing WAV Files
//
// Use Save to write a Sound back out:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Save(file, snd)
//
// Save writes a complete stereo 16-bit file with proper headers.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: the file is not 16-bit PCM
//   - ErrUnsupportedChannelCount: more than two channels
//   - ErrNoAudioData: the file has an empty data chunk
//
// Example:
//
//	snd, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
