// Package goquery extracts the resume body from HTML pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vitae"
)

// Ensure Extractor implements vitae.Extractor at compile time.
var _ vitae.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first that matches supplies the
// content.
var contentSelectors = []string{
	"#resume",
	".resume",
	"#cv",
	".cv",
	"main",
	"article",
	`[role="main"]`,
	"body",
}

// boilerplate is removed before the content is selected.
const boilerplate = "script, style, noscript, template, iframe, nav, footer, form, svg"

// Extractor selects the resume body with CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the HTML of the resume body.
func (e *Extractor) Extract(html string) (*vitae.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, vitae.Errorf(vitae.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vitae.Errorf(vitae.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(boilerplate).Remove()

	var content string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content, err = sel.Html()
		if err != nil {
			return nil, err
		}
		break
	}

	return &vitae.ExtractResult{
		Title:       title(doc),
		ContentHTML: strings.TrimSpace(content),
	}, nil
}

// title prefers the document title and falls back to the first heading.
func title(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("head title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
