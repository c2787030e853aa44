// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/sndbuf/audio"
	"github.com/ik5/sndbuf/pcm"
)

// Init prepares the audio host. It must be called once before opening
// streams; pair it with Terminate.
func Init() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing audio host: %w", err)
	}

	return nil
}

// Terminate releases the audio host.
func Terminate() error {
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("terminating audio host: %w", err)
	}

	return nil
}

// Stream is one running playback or capture session on the default
// device. Streams finish on their own; use Wait or Done to notice, then
// Stop and Close from the owning goroutine.
type Stream struct {
	pa     *portaudio.Stream
	ring   *audio.Ring // nil for copy buffer streams
	doneCh chan struct{}
	once   sync.Once
}

func (s *Stream) signalDone() {
	s.once.Do(func() { close(s.doneCh) })
}

// Done returns a channel that is closed once the stream has finished.
func (s *Stream) Done() <-chan struct{} { return s.doneCh }

// Wait blocks until the stream finishes or ctx is cancelled.
func (s *Stream) Wait(ctx context.Context) error {
	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop halts the driver side of the stream. Stopping also marks the
// stream finished, releasing any waiter. For ring streams the fault
// total is reported here, off the real-time path.
func (s *Stream) Stop() error {
	s.signalDone()

	if s.ring != nil {
		if n := s.ring.Faults(); n > 0 {
			slog.Warn("stream starved during playback",
				"faults", n,
				"consumed", s.ring.Consumed())
		} else {
			slog.Debug("stream stopped",
				"consumed", s.ring.Consumed())
		}
	}

	if err := s.pa.Stop(); err != nil {
		return fmt.Errorf("stopping stream: %w", err)
	}

	return nil
}

// Close releases the stream's driver resources. The stream must be
// stopped first.
func (s *Stream) Close() error {
	if err := s.pa.Close(); err != nil {
		return fmt.Errorf("closing stream: %w", err)
	}

	return nil
}

// playCallback drains buf into driver blocks and fires done once the
// buffer is spent. Spent buffers keep producing silence, so the driver
// stays fed until the owner stops the stream.
func playCallback(buf *audio.CopyBuffer, done func()) func([]int16) {
	return func(out []int16) {
		if _, spent := buf.ReadFrames(out); spent {
			done()
		}
	}
}

// recordCallback stores driver blocks into buf and fires done once the
// buffer is full. Input past the end is dropped.
func recordCallback(buf *audio.CopyBuffer, done func()) func([]int16) {
	return func(in []int16) {
		if _, full := buf.WriteFrames(in); full {
			done()
		}
	}
}

// ringCallback drains ring into driver blocks until the ring's Done
// flag is set, then emits silence and fires done.
func ringCallback(ring *audio.Ring, done func()) func([]int16) {
	return func(out []int16) {
		if ring.Done().IsDone() {
			for i := range out {
				out[i] = 0
			}
			done()

			return
		}

		ring.ReadFrames(out)
	}
}

// PlayBuffer opens the default output device and plays buf at rate
// frames per second, framesPerBuffer frames to a driver block. The
// returned stream finishes when the buffer is spent.
func PlayBuffer(buf *audio.CopyBuffer, rate, framesPerBuffer int) (*Stream, error) {
	s := &Stream{doneCh: make(chan struct{})}

	pa, err := portaudio.OpenDefaultStream(0, pcm.Channels, float64(rate), framesPerBuffer,
		playCallback(buf, s.signalDone))
	if err != nil {
		return nil, fmt.Errorf("opening playback stream: %w", err)
	}
	s.pa = pa

	if err := pa.Start(); err != nil {
		pa.Close()

		return nil, fmt.Errorf("starting playback stream: %w", err)
	}

	return s, nil
}

// RecordBuffer opens the default input device and captures into buf at
// rate frames per second. The returned stream finishes when the buffer
// is full.
func RecordBuffer(buf *audio.CopyBuffer, rate, framesPerBuffer int) (*Stream, error) {
	s := &Stream{doneCh: make(chan struct{})}

	pa, err := portaudio.OpenDefaultStream(pcm.Channels, 0, float64(rate), framesPerBuffer,
		recordCallback(buf, s.signalDone))
	if err != nil {
		return nil, fmt.Errorf("opening capture stream: %w", err)
	}
	s.pa = pa

	if err := pa.Start(); err != nil {
		pa.Close()

		return nil, fmt.Errorf("starting capture stream: %w", err)
	}

	return s, nil
}

// StreamRing opens the default output device and plays whatever the
// ring's filler provides. The returned stream finishes once the ring's
// Done flag is set.
func StreamRing(ring *audio.Ring, rate, framesPerBuffer int) (*Stream, error) {
	s := &Stream{ring: ring, doneCh: make(chan struct{})}

	pa, err := portaudio.OpenDefaultStream(0, pcm.Channels, float64(rate), framesPerBuffer,
		ringCallback(ring, s.signalDone))
	if err != nil {
		return nil, fmt.Errorf("opening streaming playback: %w", err)
	}
	s.pa = pa

	if err := pa.Start(); err != nil {
		pa.Close()

		return nil, fmt.Errorf("starting streaming playback: %w", err)
	}

	return s, nil
}
