// Package generic provides the portable valid-range convolution kernel.
package generic

// Valid computes dst[i] = sum_k input[i+k] * kernel[m-1-k] for every i in
// [0, len(input)-len(kernel)]. Each sum is accumulated in float32 from k = 0
// upward.
func Valid(dst, input, kernel []float32) {
	m := len(kernel)
	last := len(input) - m
	for i := 0; i <= last; i++ {
		window := input[i : i+m]
		var sum float32
		for k := 0; k < m; k++ {
			// The conversion forces rounding of the product, so the compiler
			// cannot contract it into an FMA.
			sum += float32(window[k] * kernel[m-1-k])
		}
		dst[i] = sum
	}
}
