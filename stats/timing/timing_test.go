package timing

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{
			name:   "single",
			values: []float64{4},
			want:   Summary{Count: 1, Min: 4, Max: 4, Mean: 4},
		},
		{
			name:   "constant",
			values: []float64{2, 2, 2, 2},
			want:   Summary{Count: 4, Min: 2, Max: 2, Mean: 2},
		},
		{
			name:   "spread",
			values: []float64{3, 1, 2, 4},
			want: Summary{
				Count: 4, Min: 1, MinPos: 1, Max: 4, MaxPos: 3,
				Mean: 2.5, StdDev: math.Sqrt(1.25), Spread: 3,
			},
		},
		{
			name:   "first minimum wins",
			values: []float64{5, 1, 1, 9, 9},
			want: Summary{
				Count: 5, Min: 1, MinPos: 1, Max: 9, MaxPos: 3,
				Mean: 5, StdDev: math.Sqrt(12.8), Spread: 8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if got.Count != tt.want.Count || got.MinPos != tt.want.MinPos || got.MaxPos != tt.want.MaxPos {
				t.Fatalf("positions: got %+v, want %+v", got, tt.want)
			}
			for _, f := range []struct {
				name      string
				got, want float64
			}{
				{"Min", got.Min, tt.want.Min},
				{"Max", got.Max, tt.want.Max},
				{"Mean", got.Mean, tt.want.Mean},
				{"StdDev", got.StdDev, tt.want.StdDev},
				{"Spread", got.Spread, tt.want.Spread},
			} {
				if !almostEqual(f.got, f.want, tolerance) {
					t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
				}
			}
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.Count != 0 || !math.IsNaN(got.Min) || !math.IsNaN(got.Max) || !math.IsNaN(got.Mean) {
		t.Fatalf("Summarize(nil) = %+v", got)
	}
}

func TestAccumulatorMatchesSummarize(t *testing.T) {
	values := []float64{12.5, 11.9, 13.1, 11.7, 12.0, 30.2, 11.8}

	var acc Accumulator
	for i, v := range values {
		acc.Add(v)
		if acc.Len() != i+1 {
			t.Fatalf("Len = %d, want %d", acc.Len(), i+1)
		}
	}

	if got, want := acc.Result(), Summarize(values); got != want {
		t.Fatalf("Result = %+v, want %+v", got, want)
	}

	acc.Reset()
	if acc.Len() != 0 {
		t.Fatalf("Len after Reset = %d", acc.Len())
	}
	acc.Add(-1)
	if got := acc.Result(); got.Min != -1 || got.Max != -1 || got.MinPos != 0 {
		t.Fatalf("Result after Reset = %+v", got)
	}
}

func TestStdDevLargeOffset(t *testing.T) {
	values := []float64{1e9 + 4, 1e9 + 7, 1e9 + 13, 1e9 + 16}
	got := Summarize(values)

	if !almostEqual(got.StdDev, math.Sqrt(22.5), 1e-6) {
		t.Fatalf("StdDev = %v, want %v", got.StdDev, math.Sqrt(22.5))
	}
}
