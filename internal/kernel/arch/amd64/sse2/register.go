//go:build amd64 && !purego

// Package sse2 provides the four-lane convolution kernel for amd64.
package sse2

import (
	"github.com/cwbudde/algo-conv/internal/cpu"
	"github.com/cwbudde/algo-conv/internal/kernel/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Valid:     Valid,
	})
}
