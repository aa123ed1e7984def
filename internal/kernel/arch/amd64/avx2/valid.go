//go:build amd64 && !purego

package avx2

// Valid computes eight outputs per kernel pass, then falls back to single
// outputs for the tail. Products are rounded before accumulation to stay
// bit-identical with the generic kernel.
func Valid(dst, input, kernel []float32) {
	m := len(kernel)
	outLen := len(input) - m + 1

	i := 0
	for ; i+7 < outLen; i += 8 {
		var s0, s1, s2, s3, s4, s5, s6, s7 float32
		w := input[i : i+m+7]
		for k := 0; k < m; k++ {
			c := kernel[m-1-k]
			s0 += float32(w[k] * c)
			s1 += float32(w[k+1] * c)
			s2 += float32(w[k+2] * c)
			s3 += float32(w[k+3] * c)
			s4 += float32(w[k+4] * c)
			s5 += float32(w[k+5] * c)
			s6 += float32(w[k+6] * c)
			s7 += float32(w[k+7] * c)
		}
		dst[i] = s0
		dst[i+1] = s1
		dst[i+2] = s2
		dst[i+3] = s3
		dst[i+4] = s4
		dst[i+5] = s5
		dst[i+6] = s6
		dst[i+7] = s7
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
