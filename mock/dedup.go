package mock

import "github.com/fwojciec/vitae"

var _ vitae.DuplicateFilter = (*DuplicateFilter)(nil)

// DuplicateFilter is a mock implementation of vitae.DuplicateFilter.
type DuplicateFilter struct {
	TestAndAddFn func(key string) bool
}

func (f *DuplicateFilter) TestAndAdd(key string) bool {
	return f.TestAndAddFn(key)
}
