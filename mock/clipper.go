package mock

import "github.com/fwojciec/mdclip"

var _ mdclip.Clipper = (*Clipper)(nil)

// Clipper is a mock implementation of mdclip.Clipper.
type Clipper struct {
	ClipFn func(doc mdclip.Document, pageURL string) *mdclip.Article
}

func (c *Clipper) Clip(doc mdclip.Document, pageURL string) *mdclip.Article {
	return c.ClipFn(doc, pageURL)
}
