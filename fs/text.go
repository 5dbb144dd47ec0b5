// Package fs provides file-based text extraction and resume export.
package fs

import (
	"bytes"
	"unicode/utf8"

	"github.com/fwojciec/vitae"
)

// Ensure TextExtractor implements vitae.TextExtractor at compile time.
var _ vitae.TextExtractor = (*TextExtractor)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextExtractor reads plain-text resumes.
type TextExtractor struct{}

// ExtractText returns data as a string after dropping a UTF-8 byte order
// mark. Data that is not valid UTF-8 is rejected.
func (TextExtractor) ExtractText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", vitae.Errorf(vitae.EINVALID, "text is not valid UTF-8")
	}
	return string(data), nil
}
