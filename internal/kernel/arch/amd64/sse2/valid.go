//go:build amd64 && !purego

package sse2

// Valid computes four neighbouring outputs per pass over the kernel, so each
// coefficient load is shared by four windows. Every output keeps its own
// accumulator and adds its products in the same order as the generic kernel.
func Valid(dst, input, kernel []float32) {
	m := len(kernel)
	outLen := len(input) - m + 1

	i := 0
	for ; i+3 < outLen; i += 4 {
		var s0, s1, s2, s3 float32
		w := input[i : i+m+3]
		for k := 0; k < m; k++ {
			c := kernel[m-1-k]
			s0 += float32(w[k] * c)
			s1 += float32(w[k+1] * c)
			s2 += float32(w[k+2] * c)
			s3 += float32(w[k+3] * c)
		}
		dst[i] = s0
		dst[i+1] = s1
		dst[i+2] = s2
		dst[i+3] = s3
	}

	for ; i < outLen; i++ {
		w := input[i : i+m]
		var s float32
		for k := 0; k < m; k++ {
			s += float32(w[k] * kernel[m-1-k])
		}
		dst[i] = s
	}
}
