package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-conv/internal/kernel/arch/generic"
)

// ErrInvalidArgument is matched by every precondition error of this package.
var ErrInvalidArgument = errors.New("conv: invalid argument")

// Precondition errors, each wrapping ErrInvalidArgument.
var (
	ErrEmptyInput      = fmt.Errorf("%w: empty input", ErrInvalidArgument)
	ErrEmptyKernel     = fmt.Errorf("%w: empty kernel", ErrInvalidArgument)
	ErrKernelTooLong   = fmt.Errorf("%w: kernel longer than input", ErrInvalidArgument)
	ErrOutputTooShort  = fmt.Errorf("%w: output buffer too short", ErrInvalidArgument)
	ErrNegativeWorkers = fmt.Errorf("%w: negative worker count", ErrInvalidArgument)
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrInvalidArgument)
)

// ValidLen returns the number of valid-range outputs for an input of length n
// and a kernel of length m, or 0 if m < 1 or m > n.
func ValidLen(n, m int) int {
	if m < 1 || m > n {
		return 0
	}
	return n - m + 1
}

// Valid writes the valid-range convolution of input with kernel into
// dst[:ValidLen(len(input), len(kernel))]. Elements of dst past that range
// are left untouched.
//
// The fastest kernel registered for the running CPU is used; its output is
// bit-identical to ValidNaive. dst must not overlap input or kernel.
func Valid(dst, input, kernel []float32) error {
	return ValidWith(dst, input, kernel, StrategyAuto)
}

// ValidNaive is Valid restricted to the portable sequential kernel.
func ValidNaive(dst, input, kernel []float32) error {
	return ValidWith(dst, input, kernel, StrategyNaive)
}

// ConvolveValid returns the valid-range convolution in a newly allocated
// slice.
func ConvolveValid(input, kernel []float32) ([]float32, error) {
	dst := make([]float32, ValidLen(len(input), len(kernel)))
	if err := Valid(dst, input, kernel); err != nil {
		return nil, err
	}
	return dst, nil
}

// ValidWith is Valid with an explicit computation strategy.
func ValidWith(dst, input, kernel []float32, s Strategy) error {
	n, err := check(dst, input, kernel)
	if err != nil {
		return err
	}

	switch s {
	case StrategyAuto:
		validImplementation()(dst[:n], input, kernel)
	case StrategyNaive:
		generic.Valid(dst[:n], input, kernel)
	case StrategyFFT:
		plan, err := newFFTPlan(kernel, fftSizeFor(len(input), len(kernel)))
		if err != nil {
			return err
		}
		return plan.valid(dst[:n], input, len(kernel))
	case StrategyBLAS:
		validBLAS(dst[:n], input, reversed(kernel))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return nil
}

// CheckLen returns the precondition error Valid would report for buffers of
// the given lengths, or nil. Nothing is computed.
func CheckLen(dstLen, inputLen, kernelLen int) error {
	_, err := checkLen(dstLen, inputLen, kernelLen)
	return err
}

// check validates the buffer sizes and returns the valid output length.
func check(dst, input, kernel []float32) (int, error) {
	return checkLen(len(dst), len(input), len(kernel))
}

func checkLen(dstLen, n, m int) (int, error) {
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if m == 0 {
		return 0, ErrEmptyKernel
	}
	if m > n {
		return 0, fmt.Errorf("%w: kernel has %d samples, input %d", ErrKernelTooLong, m, n)
	}

	out := ValidLen(n, m)
	if dstLen < out {
		return 0, fmt.Errorf("%w: need %d samples, got %d", ErrOutputTooShort, out, dstLen)
	}
	return out, nil
}

// reversed returns a reversed copy of x.
func reversed(x []float32) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
