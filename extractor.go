package vitae

// ExtractResult holds the extracted content from an HTML resume.
type ExtractResult struct {
	// Title is the page title, usually the candidate's name.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Scripts, styles and navigation chrome have been removed.
	ContentHTML string
}

// Extractor extracts the main content from HTML resumes.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
