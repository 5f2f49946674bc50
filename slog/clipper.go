package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdclip"
)

// Ensure LoggingClipper implements mdclip.Clipper.
var _ mdclip.Clipper = (*LoggingClipper)(nil)

// LoggingClipper wraps a Clipper with debug logging.
type LoggingClipper struct {
	next   mdclip.Clipper
	logger *slog.Logger
}

// NewLoggingClipper creates a new LoggingClipper.
func NewLoggingClipper(next mdclip.Clipper, logger *slog.Logger) *LoggingClipper {
	return &LoggingClipper{next: next, logger: logger}
}

// Clip delegates to the wrapped clipper and logs which tier produced the
// article.
func (c *LoggingClipper) Clip(doc mdclip.Document, pageURL string) *mdclip.Article {
	begin := time.Now()
	a := c.next.Clip(doc, pageURL)
	c.logger.Info("clip",
		"url", pageURL,
		"source", string(a.Source),
		"score", a.Score,
		"chars", len(a.Content),
		"duration", time.Since(begin),
	)
	if a.Content == "" {
		c.logger.Warn("no content extracted", "url", pageURL)
	}
	return a
}
