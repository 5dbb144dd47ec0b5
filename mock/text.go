package mock

import "github.com/fwojciec/vitae"

var _ vitae.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of vitae.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(data []byte) (string, error)
}

func (e *TextExtractor) ExtractText(data []byte) (string, error) {
	return e.ExtractTextFn(data)
}
