package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"

	"github.com/fwojciec/mdclip"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	r, closeFn, err := openInput(c.File, deps.Stdin)
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	defer closeFn()

	parser := deps.HTML
	if c.XHTML {
		parser = deps.XHTML
	}
	doc, err := parser.Parse(r)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	article := deps.Clipper.Clip(doc, c.URL)
	if err := article.Validate(); err != nil {
		return reportError(deps.Stderr, err)
	}

	switch {
	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	case c.FrontMatter:
		out, err := mdclip.FormatArticle(article, deps.Now())
		if err != nil {
			return reportError(deps.Stderr, err)
		}
		_, err = io.WriteString(deps.Stdout, out)
		return err
	default:
		_, err := fmt.Fprintln(deps.Stdout, article.Content)
		return err
	}
}

// openInput opens a file, or returns stdin for "" and "-".
func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, nil, mdclip.Errorf(mdclip.EINVALID, "standard input is not available")
		}
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil, mdclip.Errorf(mdclip.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return nil, nil, mdclip.Errorf(mdclip.EINVALID, "cannot read %q: %v", path, err)
	}
	return f, f.Close, nil
}
