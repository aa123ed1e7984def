// Package signal generates deterministic float32 test signals for
// convolution checks and benchmarks.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates reproducible signals from a seed.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used by Noise.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator returns a Generator with seed 1 unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the configured seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Noise returns uniform white noise in [-amplitude, amplitude].
// The same seed always yields the same samples.
func (g *Generator) Noise(amplitude float32, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out, nil
}

// Sine returns a sine with the given number of cycles per sample
// (normalized frequency, 0.5 is Nyquist).
func (g *Generator) Sine(cyclesPerSample, amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float32, samples)
	step := 2 * math.Pi * cyclesPerSample
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out, nil
}

// Impulse returns a unit impulse of the given length at pos.
// Out-of-range positions yield all zeros.
func Impulse(samples, pos int) []float32 {
	out := make([]float32, samples)
	if pos >= 0 && pos < samples {
		out[pos] = 1
	}
	return out
}

// Ramp returns 1, 2, ..., samples.
func Ramp(samples int) []float32 {
	out := make([]float32, samples)
	for i := range out {
		out[i] = float32(i + 1)
	}
	return out
}
