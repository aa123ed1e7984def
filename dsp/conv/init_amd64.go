//go:build amd64 && !purego

package conv

import (
	_ "github.com/cwbudde/algo-conv/internal/kernel/arch/amd64/avx2" // register AVX2 kernel
	_ "github.com/cwbudde/algo-conv/internal/kernel/arch/amd64/sse2" // register SSE2 kernel
	_ "github.com/cwbudde/algo-conv/internal/kernel/arch/generic"    // register generic kernel
	_ "github.com/cwbudde/algo-conv/internal/kernel/registry"        // initialize kernel registry
)
