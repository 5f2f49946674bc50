package main_test

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/mdclip"
	main "github.com/fwojciec/mdclip/cmd/mdclip"
	"github.com/fwojciec/mdclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints Markdown of a file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "page.html", articlePage)
		deps, stdout, stderr := newDeps("")

		cmd := &main.ClipCmd{File: path, URL: "https://example.com/post"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "# Story\n\n"), stdout.String())
		assert.Contains(t, stdout.String(), "See [next](https://example.com/next).")
		assert.NotContains(t, stdout.String(), "Home")
		assert.Empty(t, stderr.String())
	})

	t.Run("reads standard input without a file", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(`<html><body><p>From stdin.</p></body></html>`)

		cmd := &main.ClipCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "From stdin.\n", stdout.String())
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(articlePage)

		cmd := &main.ClipCmd{URL: "https://example.com/post", JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		var got mdclip.Article
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "Story Time", got.Title)
		assert.Equal(t, "https://example.com/post", got.URL)
		assert.Equal(t, mdclip.SourceCandidate, got.Source)
		assert.NotEmpty(t, got.ContentHash)
	})

	t.Run("prints front matter", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(articlePage)

		cmd := &main.ClipCmd{URL: "https://example.com/post", FrontMatter: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "---\ntitle: Story Time\nsource: https://example.com/post\n"), stdout.String())
		assert.Contains(t, stdout.String(), "2024-05-01")
		assert.Contains(t, stdout.String(), "---\n\n# Story\n")
	})

	t.Run("parses XHTML with the XHTML parser", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(`<html xmlns="http://www.w3.org/1999/xhtml"><body><p>Well &amp; formed.</p></body></html>`)
		deps.HTML = &mock.Parser{
			ParseFn: func(io.Reader) (mdclip.Document, error) {
				t.Error("HTML parser must not be used")
				return nil, mdclip.Errorf(mdclip.EINTERNAL, "unexpected")
			},
		}

		cmd := &main.ClipCmd{XHTML: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Well & formed.\n", stdout.String())
	})

	t.Run("reports a missing file", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps("")

		cmd := &main.ClipCmd{File: filepath.Join(t.TempDir(), "missing.html")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, mdclip.ENOTFOUND, mdclip.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: file")
		assert.Empty(t, stdout.String())
	})

	t.Run("reports pages without content", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(emptyPage)

		cmd := &main.ClipCmd{URL: "https://example.com/empty"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, mdclip.ENOCONTENT, mdclip.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no content extracted from https://example.com/empty")
		assert.Empty(t, stdout.String())
	})

	t.Run("reports parse failures", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps("<p>x</p>")
		deps.HTML = &mock.Parser{
			ParseFn: func(io.Reader) (mdclip.Document, error) {
				return nil, mdclip.Errorf(mdclip.EINVALID, "failed to parse HTML: broken")
			},
		}

		cmd := &main.ClipCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, mdclip.EINVALID, mdclip.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: failed to parse HTML: broken")
	})
}
