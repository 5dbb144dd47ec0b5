// Package bloom detects resumes whose text was already seen in a batch,
// using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/vitae"
)

// DefaultFalsePositiveRate is the false positive rate used by NewTextFilter.
const DefaultFalsePositiveRate = 0.001

var _ vitae.DuplicateFilter = (*Filter)(nil)

// Filter wraps a Bloom filter. It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// NewTextFilter creates a filter for a batch of n resumes.
func NewTextFilter(n int) *Filter {
	return NewFilter(uint(max(n, 0)), DefaultFalsePositiveRate)
}

// TestAndAdd reports whether key might have been added before and adds it.
func (f *Filter) TestAndAdd(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(key)
}
