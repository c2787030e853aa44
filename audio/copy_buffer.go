package audio

import (
	"fmt"

	"github.com/ik5/sndbuf/pcm"
)

// CopyBuffer is a single-shot buffer for playback or recording. It owns
// a private byte copy of its span and a cursor, counted in samples, that
// only ever moves forward. Play buffers start full with the cursor at
// zero; record buffers start silent the same way. Either direction, the
// buffer is spent when the cursor reaches the end.
//
// A CopyBuffer is not safe for concurrent use. In practice one goroutine
// opens it and the driver callback drains or fills it.
type CopyBuffer struct {
	data       []byte
	cursor     int
	numSamples int
}

// NewCopyBuffer copies the frame range [startFrame, stopFrame) out of
// snd into a fresh play buffer. The source is free to change or be
// released afterwards. It panics if the range does not lie inside the
// sound.
func NewCopyBuffer(snd *Sound, startFrame, stopFrame int) *CopyBuffer {
	if startFrame < 0 || stopFrame < startFrame || stopFrame > snd.Frames() {
		panic(fmt.Sprintf("audio: copy range [%d, %d) out of bounds for %d frame sound",
			startFrame, stopFrame, snd.Frames()))
	}

	span := snd.Samples[startFrame*pcm.Channels : stopFrame*pcm.Channels]
	buf := &CopyBuffer{
		data:       make([]byte, pcm.SamplesToBytes(len(span))),
		numSamples: len(span),
	}
	pcm.EncodeSamples(buf.data, span)

	return buf
}

// NewRecordBuffer allocates a silent buffer with room for frames frames,
// ready for WriteFrames to fill. It panics if frames is negative.
func NewRecordBuffer(frames int) *CopyBuffer {
	if frames < 0 {
		panic(fmt.Sprintf("audio: record buffer of %d frames", frames))
	}

	return &CopyBuffer{
		data:       make([]byte, pcm.FramesToBytes(frames)),
		numSamples: frames * pcm.Channels,
	}
}

// ReadFrames copies samples from the cursor into out and advances the
// cursor by the amount copied. When fewer samples remain than out holds,
// the tail of out is zeroed so the driver always receives a full block.
// It returns the number of whole frames copied and whether the buffer is
// now spent. It panics if out is not a whole number of frames.
func (b *CopyBuffer) ReadFrames(out []int16) (int, bool) {
	if len(out)%pcm.Channels != 0 {
		panic(fmt.Sprintf("audio: %d samples is not a whole number of frames", len(out)))
	}

	c := min(len(out), b.numSamples-b.cursor)
	pcm.DecodeSamples(out[:c], b.data[pcm.SamplesToBytes(b.cursor):pcm.SamplesToBytes(b.cursor+c)])
	for i := c; i < len(out); i++ {
		out[i] = 0
	}
	b.cursor += c

	return c / pcm.Channels, b.cursor == b.numSamples
}

// WriteFrames copies samples from in at the cursor and advances the
// cursor by the amount stored. Input beyond the buffer's remaining room
// is dropped. It returns the number of whole frames stored and whether
// the buffer is now full. It panics if in is not a whole number of
// frames.
func (b *CopyBuffer) WriteFrames(in []int16) (int, bool) {
	if len(in)%pcm.Channels != 0 {
		panic(fmt.Sprintf("audio: %d samples is not a whole number of frames", len(in)))
	}

	c := min(len(in), b.numSamples-b.cursor)
	pcm.EncodeSamples(b.data[pcm.SamplesToBytes(b.cursor):], in[:c])
	b.cursor += c

	return c / pcm.Channels, b.cursor == b.numSamples
}

// Extract decodes the buffer's entire span into a fresh sample slice.
// It does not consult the cursor: extracting a half-filled record buffer
// returns the recorded head followed by silence.
func (b *CopyBuffer) Extract() []int16 {
	out := make([]int16, b.numSamples)
	pcm.DecodeSamples(out, b.data)

	return out
}

// Cursor returns the position of the cursor in samples.
func (b *CopyBuffer) Cursor() int { return b.cursor }

// NumSamples returns the fixed length of the buffer in samples.
func (b *CopyBuffer) NumSamples() int { return b.numSamples }

// Frames returns the fixed length of the buffer in frames.
func (b *CopyBuffer) Frames() int { return b.numSamples / pcm.Channels }
