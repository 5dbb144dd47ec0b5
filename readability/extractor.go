// Package readability extracts resume content from article-style pages.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/vitae"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements vitae.Extractor at compile time.
var _ vitae.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability. Pages without a readable article are
// reported as ENOTFOUND so that a caller can try another extractor.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor. pageURL, if not nil, is used to
// resolve relative links in the content.
func NewExtractor(pageURL *url.URL) *Extractor {
	return &Extractor{pageURL: pageURL}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*vitae.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, vitae.Errorf(vitae.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, vitae.Errorf(vitae.EINVALID, "failed to parse HTML: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, vitae.Errorf(vitae.ENOTFOUND, "no readable content")
	}

	return &vitae.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
