package parse

import (
	"errors"
	"strings"

	"github.com/fwojciec/vitae"
)

var _ vitae.TextExtractor = (*HTMLText)(nil)

// HTMLText turns an HTML resume into line-structured text by isolating the
// main content and converting it.
type HTMLText struct {
	Extractor vitae.Extractor
	Converter vitae.Converter
}

// ExtractText implements vitae.TextExtractor. The page title is placed on
// the first line unless the content already contains it.
func (h *HTMLText) ExtractText(data []byte) (string, error) {
	extracted, err := h.Extractor.Extract(string(data))
	if err != nil {
		return "", err
	}

	text, err := h.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)

	if title := strings.TrimSpace(extracted.Title); title != "" && !strings.Contains(text, title) {
		text = title + "\n\n" + text
	}
	if text == "" {
		return "", vitae.Errorf(vitae.ENOTFOUND, "no text content in html")
	}
	return text, nil
}

var _ vitae.Extractor = (ExtractorChain)(nil)

// ExtractorChain tries each extractor in order and returns the first result
// with non-empty content.
type ExtractorChain []vitae.Extractor

// Extract implements vitae.Extractor.
func (c ExtractorChain) Extract(html string) (*vitae.ExtractResult, error) {
	var errs []error
	for _, e := range c {
		result, err := e.Extract(html)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(result.ContentHTML) != "" {
			return result, nil
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, vitae.Errorf(vitae.ENOTFOUND, "no extractor found content")
}
