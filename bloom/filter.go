// Package bloom detects duplicate clipped articles with a Bloom filter.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers content hashes. The Bloom filter answers most lookups;
// its hits are confirmed against the exact key set, so a unique key is
// never reported as seen. It is safe for concurrent use.
type Filter struct {
	mu   sync.Mutex
	f    *bloom.BloomFilter
	keys map[string]struct{}
}

// NewFilter creates a new filter sized for n expected items with the
// given Bloom false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		keys: make(map[string]struct{}, n),
	}
}

// Seen records key and reports whether it was recorded before.
func (f *Filter) Seen(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.f.TestAndAddString(key) {
		f.keys[key] = struct{}{}
		return false
	}
	if _, ok := f.keys[key]; ok {
		return true
	}
	f.keys[key] = struct{}{}
	return false
}
