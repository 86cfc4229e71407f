// Package bloom answers lookups for content that was never stored without
// touching the underlying store.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter of content addresses. It is safe for
// concurrent use.
type Filter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected addresses
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an address to the filter.
func (f *Filter) Add(address string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(address)
}

// Test returns true if the address might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(address string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(address)
}

// EstimatedCount returns the approximate number of addresses in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}
