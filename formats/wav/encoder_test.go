// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sndbuf/audio"
)

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	snd := audio.NewSound([]int16{0, 1, -1, 32767, -32768, 7}, 44100)
	path := filepath.Join(t.TempDir(), "out.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	if err := Save(f, snd); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("reopening file: %v", err)
	}
	defer in.Close()

	got, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if got.Rate != snd.Rate {
		t.Errorf("Rate = %d after round trip, want %d", got.Rate, snd.Rate)
	}
	if len(got.Samples) != len(snd.Samples) {
		t.Fatalf("decoded %d samples, want %d", len(got.Samples), len(snd.Samples))
	}
	for i := range snd.Samples {
		if got.Samples[i] != snd.Samples[i] {
			t.Errorf("Samples[%d] = %d after round trip, want %d", i, got.Samples[i], snd.Samples[i])
		}
	}
}

func TestSave_EmptySound(t *testing.T) {
	t.Parallel()

	snd := audio.NewSound(nil, 8000)
	path := filepath.Join(t.TempDir(), "empty.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	if err := Save(f, snd); err != nil {
		t.Errorf("Save() error = %v for an empty sound, want nil", err)
	}
}

// brokenWriteSeeker fails every write.
type brokenWriteSeeker struct{}

func (brokenWriteSeeker) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func (brokenWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

func TestSave_WriteError(t *testing.T) {
	t.Parallel()

	snd := audio.NewSound([]int16{1, 2}, 8000)

	if err := Save(brokenWriteSeeker{}, snd); err == nil {
		t.Error("Save() error = nil, want error from broken writer")
	}
}
