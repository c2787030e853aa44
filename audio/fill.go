package audio

import "github.com/ik5/sndbuf/pcm"

// FillFunc produces the next stretch of a stream. dst is always a whole
// number of frames long and frames is that count; the function must
// write all of dst, padding with silence if the stream runs short. One
// Fill pass may invoke it twice when the span wraps the end of storage.
type FillFunc func(dst []byte, frames int)

// Fill tops the ring up to one full capacity ahead of the consumer. It
// snapshots the read cursor once, targets that position plus the ring
// size, and hands the uncommitted span between the write cursor and the
// target to fill in storage order. The write cursor then commits to the
// target in a single store, publishing the whole span at once.
//
// If the consumer has already run past the write cursor, filling
// resumes from the consumer's position; the abandoned frames were never
// going to be heard. If the ring is already topped up, fill is not
// called at all.
//
// Fill must only be called from the single filler goroutine.
func (r *Ring) Fill(fill FillFunc) {
	read := r.read.Load()
	last := read + int64(r.frames)
	// read and last sit a full capacity apart, on the same storage byte.
	lastOff := r.offsetOf(read)

	first := r.write.Load()
	if first < read {
		first = read
	}
	if first == last {
		return
	}
	firstOff := r.offsetOf(first)

	if firstOff >= lastOff {
		tail := r.data[firstOff:]
		fill(tail, pcm.BytesToFrames(len(tail)))
		if lastOff > 0 {
			fill(r.data[:lastOff], pcm.BytesToFrames(lastOff))
		}
	} else {
		span := r.data[firstOff:lastOff]
		fill(span, pcm.BytesToFrames(len(span)))
	}

	r.write.Store(last)
}
