// SPDX-License-Identifier: EPL-2.0

// Package sndbuf ties fixed-format PCM buffers to audio files and to
// the machine's sound hardware.
//
// Everything in this module works on one stream format: interleaved
// stereo, signed 16-bit little-endian PCM. Decoders normalize files
// into that format on the way in; the audio package buffers it; the
// device package moves it to and from the default sound device.
//
// # Supported Formats
//
// The module decodes the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// WAV files can also be written back out with wav.Save.
//
// # Quick Start
//
// Decode a file and play it:
//
//	file, _ := os.Open("audio.wav")
//	snd, _ := wav.Decoder{}.Decode(file)
//
//	device.Init()
//	defer device.Terminate()
//
//	buf := audio.NewCopyBuffer(snd, 0, snd.Frames())
//	stream, _ := device.PlayBuffer(buf, snd.Rate, 512)
//	defer stream.Close()
//
//	stream.Wait(context.Background())
//	stream.Stop()
//
// # Streaming Longer Audio
//
// For audio that should not sit in a single buffer, a Ring plus a
// SoundFiller streams a Sound through a fixed window:
//
//	ring, done := audio.NewStreaming(4096)
//	filler := sndbuf.NewSoundFiller(snd)
//
//	stream, _ := device.StreamRing(ring, snd.Rate, 512)
//	for !filler.Exhausted() {
//	    ring.Fill(filler.Fill)
//	    time.Sleep(5 * time.Millisecond)
//	}
//	done.Set()
//	stream.Wait(context.Background())
//	stream.Stop()
//
// # Format Decoders
//
// Each format has its own decoder, and a Registry maps format keys to
// decoders for callers that pick the codec at run time:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	if dec, ok := reg.Get("wav"); ok {
//	    snd, _ := dec.Decode(reader)
//	}
//
// All decoders return an *audio.Sound in the fixed stream format.
//
// See the individual subpackages for more detailed documentation.
package sndbuf
