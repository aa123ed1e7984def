package conv

// CorrelateValid writes the valid-range cross-correlation of input with
// template into dst[:ValidLen(len(input), len(template))]:
//
//	dst[i] = sum_k input[i+k] * template[k]
//
// Correlation is convolution with the time-reversed template, so this runs
// the same exact kernels as Valid.
func CorrelateValid(dst, input, template []float32) error {
	if _, err := check(dst, input, template); err != nil {
		return err
	}
	return Valid(dst, input, reversed(template))
}

// FindPeak returns the index and value of the maximum of x, or (-1, 0) for
// an empty slice. For CorrelateValid output the index is the offset of the
// best match of the template inside the input.
func FindPeak(x []float32) (index int, value float32) {
	if len(x) == 0 {
		return -1, 0
	}

	index = 0
	value = x[0]
	for i, v := range x {
		if v > value {
			index = i
			value = v
		}
	}
	return index, value
}
