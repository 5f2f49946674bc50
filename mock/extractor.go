package mock

import "github.com/fwojciec/mdclip"

var _ mdclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mdclip.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*mdclip.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*mdclip.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
