// Package cpu detects the SIMD capabilities used to pick a convolution kernel.
//
// Detection runs once on the first call to DetectFeatures and is cached.
// Tests can pin a feature set with SetForcedFeatures.
package cpu

import "sync"

// SIMDLevel names the instruction set a kernel variant is tuned for.
// Levels are not ordered across architectures.
type SIMDLevel int

const (
	// SIMDNone selects the portable sequential kernel.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the amd64 baseline.
	SIMDSSE2

	// SIMDAVX2 is amd64 with 256-bit vectors.
	SIMDAVX2

	// SIMDNEON is arm64 Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current CPU, or the forced set
// installed by SetForcedFeatures.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether a kernel built for level can run on features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
