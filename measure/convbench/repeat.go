package convbench

import (
	"fmt"

	"github.com/cwbudde/algo-conv/dsp/conv"
)

// ErrNegativeRepeat is returned for a negative repetition count.
var ErrNegativeRepeat = fmt.Errorf("%w: negative repetition count", conv.ErrInvalidArgument)

// Repeat runs conv.Valid n times on the same buffers. Each pass overwrites
// dst, so the observable result equals a single call. Arguments are
// validated before the first pass; n == 0 validates and returns without
// writing.
func Repeat(dst, input, kernel []float32, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRepeat, n)
	}
	if err := conv.CheckLen(len(dst), len(input), len(kernel)); err != nil {
		return err
	}

	for range n {
		if err := conv.Valid(dst, input, kernel); err != nil {
			return err
		}
	}
	return nil
}

// RepeatWith is Repeat for a prepared Convolver.
func RepeatWith(c *conv.Convolver, dst, input []float32, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRepeat, n)
	}
	if err := conv.CheckLen(len(dst), len(input), c.KernelLen()); err != nil {
		return err
	}

	for range n {
		if err := c.Process(dst, input); err != nil {
			return err
		}
	}
	return nil
}
