// Package timing summarizes repeated duration measurements such as the
// per-loop times of benchmark trials.
package timing

import "math"

// Summary holds the statistics of a series of measurements.
type Summary struct {
	Count int

	// Min is the fastest measurement and MinPos its index. Benchmarks report
	// it as the representative value since noise only adds time.
	Min    float64
	MinPos int

	Max    float64
	MaxPos int

	Mean float64

	// StdDev is the population standard deviation.
	StdDev float64

	// Spread is (Max-Min)/Min, or 0 when Min is 0.
	Spread float64
}

// Summarize computes all statistics in a single pass using Welford's online
// algorithm for the variance.
func Summarize(values []float64) Summary {
	var acc Accumulator
	for _, v := range values {
		acc.Add(v)
	}
	return acc.Result()
}

// Accumulator collects measurements one at a time. The zero value is ready
// to use.
type Accumulator struct {
	n      int
	mean   float64
	m2     float64
	min    float64
	minPos int
	max    float64
	maxPos int
}

// Add records one measurement.
func (a *Accumulator) Add(x float64) {
	if a.n == 0 || x < a.min {
		a.min = x
		a.minPos = a.n
	}
	if a.n == 0 || x > a.max {
		a.max = x
		a.maxPos = a.n
	}

	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// Len returns the number of recorded measurements.
func (a *Accumulator) Len() int { return a.n }

// Result returns the statistics so far. An empty accumulator yields a zero
// Summary with NaN Min, Max and Mean.
func (a *Accumulator) Result() Summary {
	if a.n == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan}
	}

	s := Summary{
		Count:  a.n,
		Min:    a.min,
		MinPos: a.minPos,
		Max:    a.max,
		MaxPos: a.maxPos,
		Mean:   a.mean,
		StdDev: math.Sqrt(a.m2 / float64(a.n)),
	}
	if a.min != 0 {
		s.Spread = (a.max - a.min) / a.min
	}
	return s
}

// Reset clears all recorded measurements.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
