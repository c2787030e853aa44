// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync/atomic"

	"github.com/ik5/sndbuf/pcm"
)

// Done signals the end of a streaming session. The filler or any other
// goroutine sets it; the driver callback polls it. The zero value is a
// running session.
//
// Done is deliberately a separate type from Ring: the ring holds a
// reference to its flag, but a ring handle cannot be asked whether the
// stream is over, and a flag handle cannot be filled.
type Done struct {
	flag atomic.Bool
}

// Set marks the session as finished. Setting an already finished flag
// is harmless.
func (d *Done) Set() { d.flag.Store(true) }

// IsDone reports whether the session has finished.
func (d *Done) IsDone() bool { return d.flag.Load() }

// Ring is a fixed-capacity frame ring between one filler goroutine and
// one consumer, normally a driver callback. The consumer owns the read
// cursor and the fault counter; the filler owns the write cursor. Both
// cursors count frames from the start of the session and only ever grow;
// storage positions are their remainders modulo the ring size.
//
// The ring never blocks either side. A consumer that outruns the filler
// receives silence and one fault per starved call; the filler
// resynchronizes on its next pass.
type Ring struct {
	data   []byte
	frames int

	read   atomic.Int64 // owned by the consumer
	write  atomic.Int64 // owned by the filler
	faults atomic.Int64 // owned by the consumer

	done *Done
}

// NewStreaming allocates a silent ring of bufferFrames frames together
// with its completion flag. It panics if bufferFrames is not positive.
func NewStreaming(bufferFrames int) (*Ring, *Done) {
	if bufferFrames <= 0 {
		panic(fmt.Sprintf("audio: streaming ring of %d frames", bufferFrames))
	}

	done := &Done{}
	ring := &Ring{
		data:   make([]byte, pcm.FramesToBytes(bufferFrames)),
		frames: bufferFrames,
		done:   done,
	}

	return ring, done
}

// offsetOf maps a frame cursor to its byte position in storage.
func (r *Ring) offsetOf(frame int64) int {
	return int((frame * pcm.FrameBytes) % int64(len(r.data)))
}

// ReadFrames copies buffered samples into out, zero-fills whatever the
// filler has not provided yet, and advances the read cursor by the full
// length of out whether or not data was there to cover it. A call that
// finds fewer frames than it asked for counts exactly one fault. It
// returns the number of whole frames that came from the ring rather
// than from silence.
//
// ReadFrames never blocks, allocates, or takes a lock, and is safe to
// call from a real-time driver callback. It panics if out is not a
// whole number of frames.
func (r *Ring) ReadFrames(out []int16) int {
	if len(out)%pcm.Channels != 0 {
		panic(fmt.Sprintf("audio: %d samples is not a whole number of frames", len(out)))
	}
	want := int64(len(out) / pcm.Channels)
	if want == 0 {
		return 0
	}

	read := r.read.Load()
	avail := r.write.Load() - read
	if avail < 0 {
		avail = 0
	}
	c := min(want, avail)

	cs := int(c) * pcm.Channels
	off := r.offsetOf(read)
	n := pcm.FramesToBytes(int(c))
	if tail := len(r.data) - off; n > tail {
		k := pcm.BytesToSamples(tail)
		pcm.DecodeSamples(out[:k], r.data[off:])
		pcm.DecodeSamples(out[k:cs], r.data[:n-tail])
	} else {
		pcm.DecodeSamples(out[:cs], r.data[off:off+n])
	}
	for i := cs; i < len(out); i++ {
		out[i] = 0
	}

	if c < want {
		r.faults.Add(1)
	}
	r.read.Store(read + want)

	return int(c)
}

// Capacity returns the fixed size of the ring in frames.
func (r *Ring) Capacity() int { return r.frames }

// Buffered returns how many filled frames are waiting to be consumed,
// clamped to the range a healthy session can hold.
func (r *Ring) Buffered() int {
	d := r.write.Load() - r.read.Load()
	if d < 0 {
		return 0
	}
	if d > int64(r.frames) {
		return r.frames
	}

	return int(d)
}

// Consumed returns the total frames the consumer has taken since the
// session began, silence included.
func (r *Ring) Consumed() int64 { return r.read.Load() }

// Filled returns the total frames the filler has committed since the
// session began.
func (r *Ring) Filled() int64 { return r.write.Load() }

// Faults returns how many consumer calls found less data than they
// asked for.
func (r *Ring) Faults() int64 { return r.faults.Load() }

// Done returns the completion flag the ring was created with.
func (r *Ring) Done() *Done { return r.done }

// ReadCursor returns the consumer's cursor as a frame count and its
// byte position in storage.
func (r *Ring) ReadCursor() (int64, int) {
	f := r.read.Load()

	return f, r.offsetOf(f)
}

// WriteCursor returns the filler's cursor as a frame count and its byte
// position in storage.
func (r *Ring) WriteCursor() (int64, int) {
	f := r.write.Load()

	return f, r.offsetOf(f)
}
