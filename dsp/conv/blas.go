package conv

import "gonum.org/v1/gonum/blas/blas32"

// validBLAS computes dst[i] as the BLAS dot product of input[i:i+m] with the
// pre-reversed kernel. The BLAS implementation may reorder the reduction, so
// the result is not bit-identical to the sequential kernel.
func validBLAS(dst, input, reversedKernel []float32) {
	m := len(reversedKernel)
	k := blas32.Vector{N: m, Inc: 1, Data: reversedKernel}
	for i := range dst {
		w := blas32.Vector{N: m, Inc: 1, Data: input[i : i+m]}
		dst[i] = blas32.Dot(w, k)
	}
}
