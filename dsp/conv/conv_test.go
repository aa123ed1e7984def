package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-conv/dsp/signal"
	"github.com/cwbudde/algo-conv/internal/testutil"
)

func TestValidLen(t *testing.T) {
	tests := []struct {
		n, m, want int
	}{
		{5, 3, 3},
		{5, 5, 1},
		{5, 1, 5},
		{1024, 16, 1009},
		{3, 4, 0},
		{3, 0, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := ValidLen(tt.n, tt.m); got != tt.want {
			t.Errorf("ValidLen(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		input    []float32
		kernel   []float32
		expected []float32
	}{
		{
			name:     "first difference",
			input:    []float32{1, 2, 3, 4, 5},
			kernel:   []float32{1, 0, -1},
			expected: []float32{2, 2, 2},
		},
		{
			name:     "single tap",
			input:    []float32{1, 2, 3, 4, 5},
			kernel:   []float32{2},
			expected: []float32{2, 4, 6, 8, 10},
		},
		{
			name:     "full overlap",
			input:    []float32{1, 2, 3},
			kernel:   []float32{1, 10, 100},
			expected: []float32{1*100 + 2*10 + 3*1},
		},
		{
			name:     "moving sum",
			input:    []float32{1, 2, 3, 4, 5, 6},
			kernel:   []float32{1, 1},
			expected: []float32{3, 5, 7, 9, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float32, ValidLen(len(tt.input), len(tt.kernel)))
			if err := Valid(dst, tt.input, tt.kernel); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireBitExact(t, dst, tt.expected)
		})
	}
}

func TestValidWritesOnlyValidRange(t *testing.T) {
	const sentinel = -12345

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			input := signal.Ramp(40)
			kernel := []float32{0.5, 0.25, 0.125, 1}
			n := ValidLen(len(input), len(kernel))

			dst := testutil.Fill(sentinel, n+8)
			if err := ValidWith(dst, input, kernel, s); err != nil {
				t.Fatalf("ValidWith: %v", err)
			}

			for i := n; i < len(dst); i++ {
				if dst[i] != sentinel {
					t.Fatalf("dst[%d] = %v was written past the valid range", i, dst[i])
				}
			}
			for i := 0; i < n; i++ {
				if dst[i] == sentinel {
					t.Fatalf("dst[%d] was not written", i)
				}
			}
		})
	}
}

func TestValidKernelReversal(t *testing.T) {
	input, err := signal.NewGenerator(signal.WithSeed(3)).Noise(1, 97)
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range []int{1, 2, 5, 16} {
		// A one at the last position picks input[i] for output i.
		kernel := signal.Impulse(m, m-1)
		dst := make([]float32, ValidLen(len(input), m))

		if err := Valid(dst, input, kernel); err != nil {
			t.Fatalf("m=%d: %v", m, err)
		}
		testutil.RequireBitExact(t, dst, input[:len(dst)])
	}
}

func TestValidFirstTapSelectsWindowEnd(t *testing.T) {
	input := signal.Ramp(10)
	kernel := signal.Impulse(4, 0)

	out, err := ConvolveValid(input, kernel)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireBitExact(t, out, input[3:])
}

func TestValidLinearity(t *testing.T) {
	gen := signal.NewGenerator(signal.WithSeed(11))
	input, _ := gen.Noise(1, 512)
	k1, _ := signal.NewGenerator(signal.WithSeed(12)).Noise(1, 24)
	k2, _ := signal.NewGenerator(signal.WithSeed(13)).Noise(1, 24)

	sum := make([]float32, len(k1))
	for i := range sum {
		sum[i] = k1[i] + k2[i]
	}

	y1, err := ConvolveValid(input, k1)
	if err != nil {
		t.Fatal(err)
	}
	y2, err := ConvolveValid(input, k2)
	if err != nil {
		t.Fatal(err)
	}
	ySum, err := ConvolveValid(input, sum)
	if err != nil {
		t.Fatal(err)
	}

	added := make([]float32, len(y1))
	for i := range added {
		added[i] = y1[i] + y2[i]
	}

	testutil.RequireSliceNearlyEqual(t, added, ySum, 1e-4)
}

func TestValidMatchesFloat64Reference(t *testing.T) {
	input, _ := signal.NewGenerator(signal.WithSeed(21)).Noise(1, 1024)
	kernel, _ := signal.NewGenerator(signal.WithSeed(22)).Noise(1, 16)

	got, err := ConvolveValid(input, kernel)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float32, len(got))
	m := len(kernel)
	for i := range want {
		var acc float64
		for k := 0; k < m; k++ {
			acc += float64(input[i+k]) * float64(kernel[m-1-k])
		}
		want[i] = float32(acc)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-4)
}

func TestValidFullOverlapIsReversedDot(t *testing.T) {
	input, _ := signal.NewGenerator(signal.WithSeed(5)).Noise(1, 33)
	kernel, _ := signal.NewGenerator(signal.WithSeed(6)).Noise(1, 33)

	dst := make([]float32, 1)
	if err := Valid(dst, input, kernel); err != nil {
		t.Fatal(err)
	}

	var want float32
	for k := range input {
		want += float32(input[k] * kernel[len(kernel)-1-k])
	}
	if math.Float32bits(dst[0]) != math.Float32bits(want) {
		t.Fatalf("dst[0] = %v, want %v", dst[0], want)
	}
}

func TestValidErrors(t *testing.T) {
	tests := []struct {
		name   string
		dst    []float32
		input  []float32
		kernel []float32
		want   error
	}{
		{"empty input", make([]float32, 4), nil, []float32{1}, ErrEmptyInput},
		{"empty kernel", make([]float32, 4), []float32{1, 2}, nil, ErrEmptyKernel},
		{"kernel too long", make([]float32, 4), []float32{1, 2}, []float32{1, 2, 3}, ErrKernelTooLong},
		{"output too short", make([]float32, 2), []float32{1, 2, 3, 4}, []float32{1, 1}, ErrOutputTooShort},
		{"nil output", nil, []float32{1, 2, 3}, []float32{1}, ErrOutputTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range Strategies() {
				before := append([]float32(nil), tt.dst...)

				err := ValidWith(tt.dst, tt.input, tt.kernel, s)
				if !errors.Is(err, tt.want) {
					t.Fatalf("%s: expected %v, got %v", s, tt.want, err)
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("%s: %v does not match ErrInvalidArgument", s, err)
				}
				testutil.RequireBitExact(t, tt.dst, before)
			}
		})
	}
}

func TestValidWithUnknownStrategy(t *testing.T) {
	err := ValidWith(make([]float32, 3), []float32{1, 2, 3}, []float32{1}, Strategy(99))
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestConvolveValidErrors(t *testing.T) {
	if _, err := ConvolveValid([]float32{1}, []float32{1, 2}); !errors.Is(err, ErrKernelTooLong) {
		t.Fatalf("expected ErrKernelTooLong, got %v", err)
	}
	if _, err := ConvolveValid(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestValidRepeatedCallsOverwrite(t *testing.T) {
	input, _ := signal.NewGenerator(signal.WithSeed(8)).Noise(1, 300)
	kernel, _ := signal.NewGenerator(signal.WithSeed(9)).Noise(1, 7)

	once := make([]float32, ValidLen(len(input), len(kernel)))
	if err := Valid(once, input, kernel); err != nil {
		t.Fatal(err)
	}

	again := testutil.Fill(42, len(once))
	for range 5 {
		if err := Valid(again, input, kernel); err != nil {
			t.Fatal(err)
		}
	}
	testutil.RequireBitExact(t, again, once)
}

func TestCheckLen(t *testing.T) {
	tests := []struct {
		name               string
		dst, input, kernel int
		want               error
	}{
		{"ok", 3, 5, 3, nil},
		{"longer dst", 10, 5, 3, nil},
		{"equal lengths", 1, 4, 4, nil},
		{"empty input", 1, 0, 1, ErrEmptyInput},
		{"empty kernel", 1, 1, 0, ErrEmptyKernel},
		{"kernel too long", 1, 2, 3, ErrKernelTooLong},
		{"short dst", 2, 5, 3, ErrOutputTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLen(tt.dst, tt.input, tt.kernel)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("CheckLen(%d, %d, %d) = %v", tt.dst, tt.input, tt.kernel, err)
				}
				return
			}
			if !errors.Is(err, tt.want) || !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("CheckLen(%d, %d, %d) = %v, want %v", tt.dst, tt.input, tt.kernel, err, tt.want)
			}
		})
	}
}
