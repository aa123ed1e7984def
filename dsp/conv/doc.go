// Package conv computes the valid-range convolution of float32 signals.
//
// For an input of length n and a kernel of length m (1 <= m <= n) the output
// has n-m+1 samples:
//
//	out[i] = sum_{k=0}^{m-1} input[i+k] * kernel[m-1-k]
//
// Only positions where the kernel fully overlaps the input are produced;
// there is no zero padding. The kernel is applied reversed, which makes this
// a convolution rather than a cross-correlation (numpy.convolve mode "valid").
//
// # Usage
//
// Write into a caller-owned buffer:
//
//	dst := make([]float32, conv.ValidLen(len(input), len(kernel)))
//	if err := conv.Valid(dst, input, kernel); err != nil { ... }
//
// Or let the package allocate:
//
//	out, err := conv.ConvolveValid(input, kernel)
//
// For repeated use of one kernel, create a Convolver:
//
//	c, err := conv.NewConvolver(kernel, conv.WithWorkers(4))
//	err = c.Process(dst, input)
//
// # Preconditions
//
// Every entry point validates its arguments before touching dst and reports
// violations as errors matching ErrInvalidArgument. Only dst[:n-m+1] is ever
// written.
//
// # Numerics
//
// StrategyAuto and StrategyNaive accumulate each output in float32 from k = 0
// upward. The CPU-specific kernels (sse2, avx2, neon) compute several outputs
// per pass but keep that order per output, so their results are
// bit-identical to the generic kernel, with or without worker goroutines.
//
// StrategyFFT and StrategyBLAS trade that guarantee for speed on long
// kernels. Their error is bounded by float32 round-off of the FFT or of the
// reordered reduction.
//
// # Concurrency
//
// The package-level functions are safe for concurrent use as long as callers
// do not share output buffers. A Convolver is not safe for concurrent use.
package conv
