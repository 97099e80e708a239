package tldr

// Converter converts extracted HTML into plain text suitable for an LLM prompt.
type Converter interface {
	// Convert transforms HTML content into plain text.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
