package vitae

import (
	"path/filepath"
	"strings"
)

// Format identifies a resume document type.
type Format string

// Supported document formats.
const (
	FormatText Format = "txt"
	FormatHTML Format = "html"
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
)

// FormatFromPath returns the document format implied by a file name.
// Returns EINVALID for unsupported extensions.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".text", ".md":
		return FormatText, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".docx":
		return FormatDocx, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", Errorf(EINVALID, "unsupported file type %q", ext)
	}
}

// TextExtractor converts the raw bytes of a document into plain text.
type TextExtractor interface {
	// ExtractText returns the document text. Line breaks between paragraphs
	// are preserved where the format allows it.
	ExtractText(data []byte) (string, error)
}
