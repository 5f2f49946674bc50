package mdclip_test

import (
	"strings"
	"testing"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/mdclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	clipped := time.Date(2024, time.May, 1, 15, 4, 5, 0, time.UTC)

	t.Run("writes front matter that parses back", func(t *testing.T) {
		t.Parallel()

		a := &mdclip.Article{
			Title:       "Go: The Good Parts",
			URL:         "https://example.com/go",
			Content:     "# Go\n\nSimple.",
			Source:      mdclip.SourceCandidate,
			ContentHash: "00112233aabbccdd",
		}

		out, err := mdclip.FormatArticle(a, clipped)
		require.NoError(t, err)

		var meta struct {
			Title      string `yaml:"title"`
			Source     string `yaml:"source"`
			Clipped    string `yaml:"clipped"`
			Extraction string `yaml:"extraction"`
			Hash       string `yaml:"hash"`
		}
		body, err := frontmatter.Parse(strings.NewReader(out), &meta)

		require.NoError(t, err)
		assert.Equal(t, "Go: The Good Parts", meta.Title)
		assert.Equal(t, "https://example.com/go", meta.Source)
		assert.Equal(t, "2024-05-01", meta.Clipped)
		assert.Equal(t, "candidate", meta.Extraction)
		assert.Equal(t, "00112233aabbccdd", meta.Hash)
		assert.Equal(t, "# Go\n\nSimple.", strings.TrimSpace(string(body)))
	})

	t.Run("starts with a front matter delimiter", func(t *testing.T) {
		t.Parallel()

		out, err := mdclip.FormatArticle(&mdclip.Article{Title: "T", URL: "u", Content: "x"}, clipped)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "---\ntitle: T\n"), out)
		assert.True(t, strings.HasSuffix(out, "---\n\nx\n"), out)
	})
}

func TestFormatArticles(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no articles", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mdclip.FormatArticles(nil))
	})

	t.Run("uses the URL when the title is empty", func(t *testing.T) {
		t.Parallel()

		result := mdclip.FormatArticles([]*mdclip.Article{
			{Title: "Getting Started", Content: "Welcome."},
			{URL: "https://example.com/b", Content: "Second."},
		})

		expected := "## Article: Getting Started\nWelcome.\n\n## Article: https://example.com/b\nSecond."
		assert.Equal(t, expected, result)
	})
}
