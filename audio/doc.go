// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core buffer engine for fixed-format PCM
// playback and recording.
//
// This package contains the building blocks the device layer drives:
//   - Sound, a bounded clip held entirely in memory
//   - CopyBuffer for single-shot playback and recording
//   - Ring and Done for streaming playback beyond a single allocation
//   - Decoder and Registry for pluggable format decoding
//
// # Fixed Format
//
// Everything in this package works on exactly one stream format: two
// channels of interleaved signed 16-bit little-endian PCM. A sample is
// one int16 for one channel; a frame is one sample per channel, four
// bytes in total. The pcm package holds the constants and conversions.
// There is no resampling, mixing, or format conversion here; decoders
// normalize foreign files into the fixed format at the boundary.
//
// # Copy Buffers
//
// A CopyBuffer owns a private copy of its data and a cursor that only
// moves forward:
//
//	buf := audio.NewCopyBuffer(snd, 0, snd.Frames())
//	out := make([]int16, 512)
//	for {
//	    _, done := buf.ReadFrames(out)
//	    if done {
//	        break
//	    }
//	}
//
// The same type records: NewRecordBuffer allocates silence, WriteFrames
// fills it from the capture callback, and Extract snapshots the result.
//
// # Streaming Rings
//
// A Ring holds a fixed window of frames between one producer (the
// filler) and one consumer (the driver callback):
//
//	ring, done := audio.NewStreaming(4096)
//	go func() {
//	    for !done.IsDone() {
//	        ring.Fill(nextChunk)
//	        time.Sleep(5 * time.Millisecond)
//	    }
//	}()
//	// driver side, once per block:
//	ring.ReadFrames(out)
//
// Fill tops the ring up to one full capacity ahead of wherever the
// consumer currently reads. If the consumer outruns the producer it
// emits silence for the missing span, counts one fault per starved
// block, and keeps going; the next Fill resynchronizes at the consumer's
// position. Starvation is an audible glitch, not an error.
//
// # Completion
//
// A streaming session ends when its Done flag is set. The flag is a
// distinct type on purpose: the ring references it, but ring and flag
// handles cannot be substituted for one another, so the classic mistake
// of asking the ring whether the stream is over does not compile.
//
// # Concurrency Model
//
// The ring is coordinated by ownership, not locks. Each mutable field
// has exactly one writer: the consumer owns the read cursor and the
// fault counter, the filler owns the write cursor. The other side only
// reads, and a stale read is harmless: the filler writes slightly less,
// the consumer plays silence slightly sooner. Fields are atomic so the
// cross-thread reads are well-defined, but there are no mutexes, no
// compare-and-swap loops, and nothing on the consumer path that can
// block, allocate, or take a lock. ReadFrames is safe to call from a
// real-time driver callback.
//
// # Error Handling
//
// Runtime failures return errors in the usual way. Violated
// preconditions (a copy range outside the source, a misaligned buffer
// length) are programmer errors and panic immediately; nothing in this
// package silently clamps a bad argument.
package audio
