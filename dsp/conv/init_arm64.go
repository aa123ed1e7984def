//go:build arm64 && !purego

package conv

import (
	_ "github.com/cwbudde/algo-conv/internal/kernel/arch/arm64/neon" // register NEON kernel
	_ "github.com/cwbudde/algo-conv/internal/kernel/arch/generic"    // register generic kernel
	_ "github.com/cwbudde/algo-conv/internal/kernel/registry"        // initialize kernel registry
)
