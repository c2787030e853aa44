// SPDX-License-Identifier: EPL-2.0

package sndbuf

import (
	"testing"

	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/internal/audiotest"
	"github.com/ik5/sndbuf/pcm"
)

func TestSoundFiller_EncodesAndAdvances(t *testing.T) {
	t.Parallel()

	snd := audio.NewSound(audiotest.RampSamples(4), 8000)
	f := NewSoundFiller(snd)

	dst := make([]byte, pcm.FramesToBytes(3))
	out := make([]int16, 3*pcm.Channels)

	f.Fill(dst, 3)
	pcm.DecodeSamples(out, dst)
	for i, s := range out {
		if s != int16(i) {
			t.Fatalf("first fill sample %d = %d, want %d", i, s, i)
		}
	}
	if f.Exhausted() {
		t.Fatal("Exhausted() = true with one frame left")
	}
	if got := f.FramesWritten(); got != 3 {
		t.Fatalf("FramesWritten() = %d, want 3", got)
	}

	// Only one frame of sound remains; the rest must be silence.
	f.Fill(dst, 3)
	pcm.DecodeSamples(out, dst)
	want := []int16{6, 7, 0, 0, 0, 0}
	for i, s := range out {
		if s != want[i] {
			t.Fatalf("second fill = %v, want %v", out, want)
		}
	}
	if !f.Exhausted() {
		t.Fatal("Exhausted() = false after encoding every sample")
	}
	if got := f.FramesWritten(); got != 4 {
		t.Fatalf("FramesWritten() = %d, want 4", got)
	}
}

func TestSoundFiller_PadsSilenceWhenExhausted(t *testing.T) {
	t.Parallel()

	snd := audio.NewSound(audiotest.RampSamples(2), 8000)
	f := NewSoundFiller(snd)

	dst := make([]byte, pcm.FramesToBytes(2))
	f.Fill(dst, 2)
	if !f.Exhausted() {
		t.Fatal("Exhausted() = false after draining the sound")
	}

	// Stale bytes in dst must not leak through as sound.
	for i := range dst {
		dst[i] = 0x55
	}
	f.Fill(dst, 2)
	for i, b := range dst {
		if b != 0 {
			t.Fatalf("dst[%d] = %#x after exhaustion, want 0", i, b)
		}
	}
	if got := f.FramesWritten(); got != 2 {
		t.Fatalf("FramesWritten() = %d, want 2", got)
	}
}

func TestSoundFiller_EmptySound(t *testing.T) {
	t.Parallel()

	f := NewSoundFiller(audio.NewSound(nil, 8000))
	if !f.Exhausted() {
		t.Fatal("Exhausted() = false for an empty sound")
	}

	dst := make([]byte, pcm.FramesToBytes(1))
	dst[0] = 0x7f
	f.Fill(dst, 1)
	for i, b := range dst {
		if b != 0 {
			t.Fatalf("dst[%d] = %#x, want 0", i, b)
		}
	}
}

// TestSoundFiller_StreamsThroughRing drives a whole sound through a
// small ring and checks that the consumer sees every sample once, in
// order, with no starvation.
func TestSoundFiller_StreamsThroughRing(t *testing.T) {
	t.Parallel()

	snd := audio.NewSound(audiotest.RampSamples(20), 8000)
	f := NewSoundFiller(snd)
	ring, done := audio.NewStreaming(8)

	var got []int16
	out := make([]int16, 5*pcm.Channels)
	for !f.Exhausted() {
		ring.Fill(f.Fill)
		ring.ReadFrames(out)
		got = append(got, out...)
	}
	done.Set()

	if len(got) != len(snd.Samples) {
		t.Fatalf("consumed %d samples, want %d", len(got), len(snd.Samples))
	}
	for i, s := range got {
		if s != snd.Samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, s, snd.Samples[i])
		}
	}
	if n := ring.Faults(); n != 0 {
		t.Fatalf("Faults() = %d, want 0", n)
	}
	if got := f.FramesWritten(); got != snd.Frames() {
		t.Fatalf("FramesWritten() = %d, want %d", got, snd.Frames())
	}
}

func TestSoundFiller_FillNeverAllocates(t *testing.T) {
	snd := audio.NewSound(audiotest.RampSamples(64), 8000)
	f := NewSoundFiller(snd)
	dst := make([]byte, pcm.FramesToBytes(4))

	allocs := testing.AllocsPerRun(10, func() {
		f.Fill(dst, 4)
	})
	if allocs != 0 {
		t.Fatalf("Fill allocates %v times per call, want 0", allocs)
	}
}
