package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mdclip"
)

// Ensure LoggingParser implements mdclip.Parser.
var _ mdclip.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   mdclip.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next mdclip.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(r io.Reader) (doc mdclip.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(r)
}
