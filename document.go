package mdclip

import "io"

// Document is a parsed web page exposed through a narrow capability
// interface, so the engine can run against any tree representation.
type Document interface {
	// Title returns the trimmed text of the page's <title>, or "".
	Title() string

	// Body returns the body element, or nil if the page has none.
	Body() Node

	// Select returns the element nodes matching a CSS selector in document
	// order. An invalid selector matches nothing.
	Select(selector string) []Node
}

// Parser parses raw markup into a Document.
type Parser interface {
	// Parse reads markup from r.
	// Returns EINVALID if the input cannot be parsed.
	Parse(r io.Reader) (Document, error)
}
