package conv

import (
	"sync"

	"github.com/cwbudde/algo-conv/internal/cpu"
	"github.com/cwbudde/algo-conv/internal/kernel/registry"
)

var (
	validImpl     registry.ValidFn
	validImplName string
	validInitOnce sync.Once
)

func initValidOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("conv: no valid-convolution kernel registered")
	}
	if entry.Valid == nil {
		panic("conv: selected kernel " + entry.Name + " has no Valid operation")
	}
	validImpl = entry.Valid
	validImplName = entry.Name
}

func validImplementation() registry.ValidFn {
	validInitOnce.Do(initValidOperation)
	return validImpl
}

// Implementation returns the name of the kernel variant StrategyAuto uses on
// this CPU, e.g. "avx2" or "generic".
func Implementation() string {
	validInitOnce.Do(initValidOperation)
	return validImplName
}
