// Package registry holds the valid-range convolution kernel variants.
//
// Architecture packages register themselves from init(). The conv package
// looks up the highest-priority variant the CPU supports. Every registered
// variant must produce output bit-identical to the generic kernel.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-conv/internal/cpu"
)

// ValidFn writes the valid-range convolution of input with kernel into
// dst[:len(input)-len(kernel)+1]. Callers guarantee
// 1 <= len(kernel) <= len(input) and a large enough dst.
type ValidFn func(dst, input, kernel []float32)

// OpEntry is one registered kernel variant.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries, highest first.
	// generic 0, sse2 10, neon 15, avx2 20.
	Priority int

	Valid ValidFn
}

// OpRegistry stores the available variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry used by the conv package.
var Global = &OpRegistry{}

// Register adds a variant. Safe for concurrent use, but all registrations
// should happen before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the entry registered under name, or nil.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// sortByPriority must be called with r.mu held for writing.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all entries for tests and diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
