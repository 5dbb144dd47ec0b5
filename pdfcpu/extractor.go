// Package pdfcpu extracts resume text from PDF documents.
package pdfcpu

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/vitae"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Ensure Extractor implements vitae.TextExtractor at compile time.
var _ vitae.TextExtractor = (*Extractor)(nil)

// Extractor reads the text-showing operators of each page's content stream.
// Pages are separated by a blank line. Text drawn as images is not recovered.
type Extractor struct{}

// ExtractText returns the text of the PDF in data.
func (Extractor) ExtractText(data []byte) (string, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return "", vitae.Errorf(vitae.EINVALID, "failed to read PDF: %v", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil || r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(textFromContent(content)); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", vitae.Errorf(vitae.EINVALID, "no text content found in PDF")
	}
	return strings.Join(pages, "\n\n"), nil
}

// stringLiteral matches a PDF string literal, allowing escaped parentheses.
var stringLiteral = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// textFromContent walks a content stream line by line. Text positioning
// operators start a new line so that each drawn line of the resume stays
// on its own line.
func textFromContent(content []byte) string {
	var sb strings.Builder
	newline := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	}

	for _, line := range bytes.Split(content, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0:
		case bytes.Equal(line, []byte("T*")):
			newline()
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			newline()
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range stringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(decodeString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			newline()
			for _, m := range stringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(decodeString(m[1]))
			}
		}
	}
	return sb.String()
}

// decodeString resolves the escape sequences of a PDF string literal.
func decodeString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b', 'f':
		default:
			if c < '0' || c > '7' {
				sb.WriteByte(c)
				continue
			}
			// Up to three octal digits.
			val := int(c - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}
