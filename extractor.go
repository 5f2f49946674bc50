package mdclip

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	ContentHTML string
}

// Extractor extracts main content from raw HTML as clean HTML. These are
// third-party baselines the engine's output is compared against.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL and returns the main
	// content. pageURL may be empty.
	Extract(html string, pageURL string) (*ExtractResult, error)
}
