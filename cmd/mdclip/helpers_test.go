package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	main "github.com/fwojciec/mdclip/cmd/mdclip"
	"github.com/fwojciec/mdclip/etree"
	"github.com/fwojciec/mdclip/extract"
	"github.com/fwojciec/mdclip/goquery"
	"github.com/stretchr/testify/require"
)

// articlePage is a page whose article the engine locates.
var articlePage = `<html><head><title>Story Time</title></head><body>
<nav><a href="/">Home</a></nav>
<article><h1>Story</h1><p>` + strings.Repeat("word ", 80) + `</p><p>See <a href="/next">next</a>.</p></article>
</body></html>`

// emptyPage has nothing to extract.
const emptyPage = `<html><body><nav><a href="/">Home</a></nav></body></html>`

var clipDate = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

// newDeps returns dependencies backed by the real parsers and engine.
func newDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdin:   strings.NewReader(stdin),
		Stdout:  stdout,
		Stderr:  stderr,
		Now:     func() time.Time { return clipDate },
		HTML:    goquery.NewParser(),
		XHTML:   etree.NewParser(),
		Clipper: extract.NewEngine(),
	}, stdout, stderr
}

// writeFile writes content to name inside dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
