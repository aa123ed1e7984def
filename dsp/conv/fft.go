package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftPlan holds a complex64 FFT plan together with the kernel spectrum for
// one transform size.
type fftPlan struct {
	size      int
	plan      *algofft.Plan[complex64]
	kernelFFT []complex64
	buf       []complex64
}

// fftSizeFor returns the transform size that holds the full linear
// convolution of an n-sample input with an m-sample kernel without wrap.
func fftSizeFor(n, m int) int {
	return nextPowerOf2(n + m - 1)
}

func newFFTPlan(kernel []float32, size int) (*fftPlan, error) {
	plan, err := algofft.NewPlanT[complex64](size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	p := &fftPlan{
		size:      size,
		plan:      plan,
		kernelFFT: make([]complex64, size),
		buf:       make([]complex64, size),
	}

	for i, v := range kernel {
		p.buf[i] = complex(v, 0)
	}
	if err := plan.Forward(p.kernelFFT, p.buf); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return p, nil
}

// valid computes the full linear convolution in the frequency domain and
// copies its fully overlapping part, samples m-1 .. n-1, into dst.
func (p *fftPlan) valid(dst, input []float32, m int) error {
	clear(p.buf)
	for i, v := range input {
		p.buf[i] = complex(v, 0)
	}

	if err := p.plan.Forward(p.buf, p.buf); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range p.buf {
		p.buf[i] *= p.kernelFFT[i]
	}

	if err := p.plan.Inverse(p.buf, p.buf); err != nil {
		return fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(p.buf[m-1+i])
	}

	return nil
}
