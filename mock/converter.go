package mock

import "github.com/fwojciec/vitae"

var _ vitae.Converter = (*Converter)(nil)

// Converter is a mock implementation of vitae.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
