//go:build arm64 && !purego

package neon

// Valid walks the kernel once per group of four outputs. arm64 contracts
// a*b+c into FMADD unless the product is converted explicitly, which would
// break bit-identity with the generic kernel.
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
		dst[i], dst[i+1], dst[i+2], dst[i+3] = s0, s1, s2, s3
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
