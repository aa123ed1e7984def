//go:build arm64 && !purego

// Package neon provides the four-lane convolution kernel for arm64.
package neon

import (
	"github.com/cwbudde/algo-conv/internal/cpu"
	"github.com/cwbudde/algo-conv/internal/kernel/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Valid:     Valid,
	})
}
