package mdclip

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into Markdown.
	// Relative links and images are resolved against pageURL when it is
	// absolute; pageURL may be empty.
	Convert(html string, pageURL string) (string, error)
}
