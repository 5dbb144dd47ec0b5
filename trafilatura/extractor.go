// Package trafilatura extracts resume content from web pages with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/vitae"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements vitae.Extractor at compile time.
var _ vitae.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Pages where no content is found are reported as ENOTFOUND.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*vitae.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, vitae.Errorf(vitae.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, vitae.Errorf(vitae.ENOTFOUND, "no main content: %v", err)
	}

	var contentHTML string
	switch {
	case result.ContentNode != nil:
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	case strings.TrimSpace(result.ContentText) != "":
		contentHTML = textToHTML(result.ContentText)
	default:
		return nil, vitae.Errorf(vitae.ENOTFOUND, "no main content")
	}

	return &vitae.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// textToHTML wraps each non-empty line of text in a paragraph.
func textToHTML(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString("<p>")
			b.WriteString(html.EscapeString(line))
			b.WriteString("</p>")
		}
	}
	return b.String()
}
