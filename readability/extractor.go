// Package readability provides a baseline Extractor backed by go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/mdclip"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements mdclip.Extractor at compile time.
var _ mdclip.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Relative links
// in the result are resolved against pageURL when it is absolute.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*mdclip.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mdclip.Errorf(mdclip.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, mdclip.Errorf(mdclip.ENOCONTENT, "readability: %v", err)
	}

	return &mdclip.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
