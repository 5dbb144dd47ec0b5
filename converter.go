package vitae

// Converter converts HTML to line-structured text.
type Converter interface {
	// Convert transforms HTML content into text with one block element
	// per line. The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
