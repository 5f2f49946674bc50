package slog_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/mdclip"
	"github.com/fwojciec/mdclip/mock"
	mdslog "github.com/fwojciec/mdclip/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingClipper_Clip(t *testing.T) {
	t.Parallel()

	t.Run("logs source, score and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Clipper{
			ClipFn: func(doc mdclip.Document, pageURL string) *mdclip.Article {
				return &mdclip.Article{URL: pageURL, Content: "# Hi", Source: mdclip.SourceCandidate, Score: 17}
			},
		}

		c := mdslog.NewLoggingClipper(inner, logger)
		a := c.Clip(&mock.Document{}, "https://example.com/post")

		assert.Equal(t, "# Hi", a.Content)
		output := buf.String()
		assert.Contains(t, output, "msg=clip")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "source=candidate")
		assert.Contains(t, output, "score=17")
		assert.Contains(t, output, "chars=4")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "no content extracted")
	})

	t.Run("warns when nothing was extracted", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		inner := &mock.Clipper{
			ClipFn: func(doc mdclip.Document, pageURL string) *mdclip.Article {
				return &mdclip.Article{URL: pageURL, Source: mdclip.SourceFallback}
			},
		}

		c := mdslog.NewLoggingClipper(inner, logger)
		c.Clip(&mock.Document{}, "https://example.com/empty")

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "no content extracted")
		assert.NotContains(t, output, "msg=clip")
	})
}

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		doc := &mock.Document{}
		inner := &mock.Parser{
			ParseFn: func(r io.Reader) (mdclip.Document, error) {
				return doc, nil
			},
		}

		p := mdslog.NewLoggingParser(inner, logger)
		got, err := p.Parse(strings.NewReader("<p>x</p>"))

		require.NoError(t, err)
		assert.Same(t, doc, got)
		assert.Contains(t, buf.String(), "msg=parse")
		assert.Contains(t, buf.String(), "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			ParseFn: func(r io.Reader) (mdclip.Document, error) {
				return nil, errors.New("bad markup")
			},
		}

		p := mdslog.NewLoggingParser(inner, logger)
		_, err := p.Parse(strings.NewReader(""))

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="bad markup"`)
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extractor name and bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, pageURL string) (*mdclip.ExtractResult, error) {
				return &mdclip.ExtractResult{ContentHTML: "<p>hello</p>"}, nil
			},
		}

		e := mdslog.NewLoggingExtractor("trafilatura", inner, logger)
		_, err := e.Extract("<html></html>", "https://example.com")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "extractor=trafilatura")
		assert.Contains(t, output, "bytes=12")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, pageURL string) (*mdclip.ExtractResult, error) {
				return nil, errors.New("no article")
			},
		}

		e := mdslog.NewLoggingExtractor("readability", inner, logger)
		_, err := e.Extract("<html></html>", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "bytes=0")
		assert.Contains(t, buf.String(), `err="no article"`)
	})
}
