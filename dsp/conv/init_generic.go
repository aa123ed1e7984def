//go:build (!amd64 && !arm64) || purego

package conv

import (
	_ "github.com/cwbudde/algo-conv/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-conv/internal/kernel/registry"
)
