// Package etree extracts resume text from Office Open XML documents.
package etree

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/vitae"
)

// Ensure DocxExtractor implements vitae.TextExtractor at compile time.
var _ vitae.TextExtractor = (*DocxExtractor)(nil)

const documentPart = "word/document.xml"

// DocxExtractor reads the main document part of a .docx file.
// Each paragraph becomes one line; tabs and line breaks are kept.
type DocxExtractor struct{}

// ExtractText returns the text of the .docx document in data.
func (DocxExtractor) ExtractText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", vitae.Errorf(vitae.EINVALID, "not a docx archive: %v", err)
	}

	part, err := readPart(zr, documentPart)
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(part); err != nil {
		return "", vitae.Errorf(vitae.EINVALID, "failed to parse %s: %v", documentPart, err)
	}

	var lines []string
	for _, p := range doc.FindElements("//w:p") {
		var sb strings.Builder
		writeRuns(&sb, p)
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n"), nil
}

func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, vitae.Errorf(vitae.EINVALID, "docx archive has no %s", name)
}

// writeRuns appends the text under el in document order.
func writeRuns(sb *strings.Builder, el *etree.Element) {
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "t":
			sb.WriteString(child.Text())
		case "tab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		case "p":
			// Nested paragraphs (text boxes) are visited by the caller.
		default:
			writeRuns(sb, child)
		}
	}
}
