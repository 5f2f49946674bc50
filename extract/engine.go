// Package extract locates the primary article of a page and converts it
// to Markdown.
//
// The pipeline is: Locate (scoring candidates with Score) and, when no
// candidate qualifies, Clone and Sanitize the body; then Markdown, which
// delegates tables to Table. Every step works through the mdclip.Node and
// mdclip.Document interfaces and never mutates the page being read.
package extract

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdclip"
)

// Ensure Engine implements mdclip.Clipper at compile time.
var _ mdclip.Clipper = (*Engine)(nil)

// Engine runs the extraction pipeline. It holds only configuration and is
// safe for concurrent use.
type Engine struct {
	config Config
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// NewEngine creates a new Engine with DefaultConfig unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{config: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Clip extracts the primary content of doc as Markdown.
func (e *Engine) Clip(doc mdclip.Document, pageURL string) *mdclip.Article {
	article := &mdclip.Article{
		Title:  e.config.UntitledTitle,
		URL:    pageURL,
		Source: mdclip.SourceFallback,
	}
	if doc == nil {
		return article
	}

	base := parseBase(pageURL)
	if base != nil {
		article.URL = base.String()
	}
	article.Title = e.title(doc)

	root, source, score := e.Source(doc)
	article.Source = source
	article.Score = score
	if root != nil {
		article.Content = Markdown(root, base)
	}
	if article.Content != "" {
		article.ContentHash = ContentHash(article.Content)
	}

	return article
}

// Source returns the node to transduce: the best candidate, or a sanitized
// copy of the body when no candidate qualifies. The node is nil when the
// document has no body.
func (e *Engine) Source(doc mdclip.Document) (mdclip.Node, mdclip.ExtractionSource, int) {
	if c, ok := Locate(doc, e.config); ok {
		return c.Node, mdclip.SourceCandidate, c.Score
	}

	clone := Clone(doc.Body())
	if clone == nil {
		return nil, mdclip.SourceFallback, 0
	}

	var denied []mdclip.Node
	for _, selector := range e.config.Denylist {
		denied = append(denied, doc.Select(selector)...)
	}
	Sanitize(clone, OriginIn(denied))

	return clone, mdclip.SourceFallback, 0
}

// title prefers <title>, then the first h1, then the placeholder.
func (e *Engine) title(doc mdclip.Document) string {
	if title := collapseSpace(doc.Title()); title != "" {
		return title
	}
	for _, h1 := range doc.Select("h1") {
		if title := collapseSpace(h1.Text()); title != "" {
			return title
		}
	}
	return e.config.UntitledTitle
}

// ContentHash returns a stable hex digest of Markdown content.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
