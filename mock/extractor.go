package mock

import "github.com/fwojciec/vitae"

var _ vitae.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of vitae.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*vitae.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*vitae.ExtractResult, error) {
	return e.ExtractFn(html)
}
