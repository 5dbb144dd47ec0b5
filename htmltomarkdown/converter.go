// Package htmltomarkdown renders HTML resumes as line-structured text.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/vitae"
)

// Ensure Converter implements vitae.Converter at compile time.
var _ vitae.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Block structure (headings, paragraphs,
// list items, table rows) becomes line structure; inline markup is removed
// unless Markdown output is requested.
type Converter struct {
	conv     *converter.Converter
	markdown bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithMarkdown keeps the Markdown markup in the output.
func WithMarkdown() Option {
	return func(c *Converter) {
		c.markdown = true
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", vitae.Errorf(vitae.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	if c.markdown {
		return md, nil
	}
	return plainText(md), nil
}

var (
	headingPrefix  = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	imageSyntax    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkSyntax     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	strongSyntax   = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	emphasisSyntax = regexp.MustCompile(`\*([^*\n]+)\*`)
	escapedChar    = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!|<>])")
	tableRule      = regexp.MustCompile(`^\|?[\s:|-]+\|?$`)
)

// plainText strips Markdown markup while keeping one block per line.
// Table cells are joined with a double space.
func plainText(md string) string {
	md = headingPrefix.ReplaceAllString(md, "")
	md = imageSyntax.ReplaceAllString(md, "")
	md = linkSyntax.ReplaceAllString(md, "$1")
	md = strongSyntax.ReplaceAllString(md, "$2")
	md = emphasisSyntax.ReplaceAllString(md, "$1")

	lines := strings.Split(md, "\n")
	out := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") {
			if tableRule.MatchString(trimmed) {
				continue
			}
			line = tableRow(trimmed)
		}
		out = append(out, escapedChar.ReplaceAllString(line, "$1"))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func tableRow(row string) string {
	row = strings.TrimSuffix(strings.TrimPrefix(row, "|"), "|")
	var cells []string
	for _, cell := range strings.Split(row, "|") {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return strings.Join(cells, "  ")
}
