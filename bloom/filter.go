// Package bloom provides story ID deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/hnlist"
)

// DefaultFalsePositiveRate keeps the chance of dropping a distinct story
// negligible for listing-sized inputs.
const DefaultFalsePositiveRate = 1e-9

// Ensure Filter implements hnlist.SeenFilter at compile time.
var _ hnlist.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for story ID deduplication.
// Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected IDs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a story ID.
func (f *Filter) Add(id string) {
	f.f.AddString(id)
}

// Test returns true if the ID might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(id string) bool {
	return f.f.TestString(id)
}

// EstimatedCount returns the approximate number of IDs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
