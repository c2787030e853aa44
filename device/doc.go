// SPDX-License-Identifier: EPL-2.0

// Package device connects the buffer engine to the machine's sound
// hardware through PortAudio.
//
// # Host Lifecycle
//
// The audio host must be initialized once before any stream is opened
// and released when the program is done with audio:
//
//	if err := device.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer device.Terminate()
//
// # Playback and Recording
//
// PlayBuffer and RecordBuffer run a CopyBuffer against the default
// output or input device. StreamRing feeds the default output from a
// Ring that a filler goroutine keeps topped up. All three return a
// running Stream:
//
//	stream, err := device.PlayBuffer(buf, snd.Rate, 512)
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//
//	if err := stream.Wait(ctx); err != nil {
//	    return err
//	}
//	stream.Stop()
//
// A Stream finishes on its own when its buffer is spent, its recording
// is full, or its ring's Done flag is set. Wait blocks for that moment;
// Done exposes it as a channel for select loops.
//
// # Real-Time Callbacks
//
// The driver invokes the stream callback on a real-time thread. The
// callbacks in this package only move samples between the driver block
// and a CopyBuffer or Ring; they never allocate, lock, or log. Fault
// totals accumulated by a ring are reported once, when Stop is called.
package device
