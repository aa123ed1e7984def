//go:build amd64 && !purego

// Package avx2 provides the eight-lane convolution kernel for AVX2 CPUs.
package avx2

import (
	"github.com/cwbudde/algo-conv/internal/cpu"
	"github.com/cwbudde/algo-conv/internal/kernel/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Valid:     Valid,
	})
}
