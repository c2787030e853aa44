// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestEncodeDecodeSamples(t *testing.T) {
	t.Parallel()

	src := []int16{0, 1, -1, 100, -100, 32767, -32768, 12345, -12345}

	buf := make([]byte, SamplesToBytes(len(src)))
	if n := EncodeSamples(buf, src); n != len(buf) {
		t.Errorf("EncodeSamples() = %d bytes, want %d", n, len(buf))
	}

	got := make([]int16, len(src))
	if n := DecodeSamples(got, buf); n != len(src) {
		t.Errorf("DecodeSamples() = %d samples, want %d", n, len(src))
	}

	for i := range src {
		if got[i] != src[i] {
			t.Errorf("sample %d: got %d, want %d", i, got[i], src[i])
		}
	}
}

func TestEncodeSamples_LittleEndianLayout(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4)
	EncodeSamples(buf, []int16{0x0102, -2}) // -2 is 0xFFFE

	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestEncodeSamples_PanicsOnShortDst(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("EncodeSamples() with short dst did not panic")
		}
	}()
	EncodeSamples(make([]byte, 2), []int16{1, 2})
}

func TestDecodeSamples_PanicsOnShortDst(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("DecodeSamples() with short dst did not panic")
		}
	}()
	DecodeSamples(make([]int16, 1), make([]byte, 4))
}

func TestDecodeSamples_PanicsOnOddSrc(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("DecodeSamples() with odd src did not panic")
		}
	}()
	DecodeSamples(make([]int16, 2), make([]byte, 3))
}

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"max negative", -1.0, math.MinInt16},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16383},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -1.5, math.MinInt16},
		{"clamp way over", 100.0, math.MaxInt16},
		{"clamp way under", -100.0, math.MinInt16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			// Allow for rounding differences of ±1
			diff := int16(math.Abs(float64(got - tt.want)))

			if diff > 1 {
				t.Errorf("Float32ToInt16(%v) = %v, want %v (diff %v)",
					tt.input, got, tt.want, diff)
			}
		})
	}
}

// TestFloat32ToInt16Monotonic tests that the conversion never inverts order.
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

// TestEncodeDecode_ZeroAllocs verifies the codec never touches the heap.
func TestEncodeDecode_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	src := make([]int16, 1024)
	buf := make([]byte, SamplesToBytes(len(src)))
	dst := make([]int16, len(src))

	allocs := testing.AllocsPerRun(100, func() {
		EncodeSamples(buf, src)
		DecodeSamples(dst, buf)
	})

	if allocs > 0 {
		t.Errorf("codec allocated %v times, want 0", allocs)
	}
}

// BenchmarkEncodeSamples measures the driver-block encode cost.
func BenchmarkEncodeSamples(b *testing.B) {
	src := make([]int16, 512) // 256 frames, a typical driver block
	for i := range src {
		src[i] = int16(i)
	}
	buf := make([]byte, SamplesToBytes(len(src)))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		EncodeSamples(buf, src)
	}
}

// BenchmarkDecodeSamples measures the driver-block decode cost.
func BenchmarkDecodeSamples(b *testing.B) {
	buf := make([]byte, 2048)
	for i := range buf {
		buf[i] = byte(i)
	}
	dst := make([]int16, 1024)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		DecodeSamples(dst, buf)
	}
}
