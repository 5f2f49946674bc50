package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdclip"
)

// Ensure LoggingExtractor implements mdclip.Extractor.
var _ mdclip.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	name   string
	next   mdclip.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. name identifies the
// wrapped extractor in log records.
func NewLoggingExtractor(name string, next mdclip.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{name: name, next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html, pageURL string) (result *mdclip.ExtractResult, err error) {
	defer func(begin time.Time) {
		var n int
		if result != nil {
			n = len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"extractor", e.name,
			"url", pageURL,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
