package narrator

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., the content node of a Reader).
	Convert(html string) (string, error)
}
