package generic

import (
	"github.com/cwbudde/algo-conv/internal/cpu"
	"github.com/cwbudde/algo-conv/internal/kernel/registry"
)

// init registers the sequential kernel. It is the reference every other
// variant is checked against, and the only one selected under ForceGeneric.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Valid:     Valid,
	})
}
