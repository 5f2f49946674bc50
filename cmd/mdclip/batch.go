package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/fwojciec/mdclip"
	"github.com/fwojciec/mdclip/bloom"
	"golang.org/x/sync/errgroup"
)

// dedupeFalsePositiveRate bounds how often a unique article falls through
// to the exact hash comparison.
const dedupeFalsePositiveRate = 0.001

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	base, err := c.base()
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	articles := make([]*mdclip.Article, len(c.Files))
	errs := make([]error, len(c.Files))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for i, file := range c.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			articles[i], errs[i] = c.clipFile(deps, file, pageURL(base, file))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	seen := bloom.NewFilter(uint(max(len(c.Files), 1)), dedupeFalsePositiveRate)
	enc := json.NewEncoder(deps.Stdout)
	var clipped, duplicates, failed int
	for i, file := range c.Files {
		if errs[i] != nil {
			warn(deps.Stderr, "%s: %s", file, mdclip.ErrorMessage(errs[i]))
			failed++
			continue
		}
		a := articles[i]
		if seen.Seen(a.ContentHash) {
			warn(deps.Stderr, "%s: duplicate content, skipped", file)
			duplicates++
			continue
		}
		if deps.Store != nil {
			err = deps.Store.Save(deps.Ctx, a, file)
		} else {
			err = enc.Encode(a)
		}
		if err != nil {
			if deps.Store != nil {
				_ = deps.Store.Abort()
			}
			return reportError(deps.Stderr, err)
		}
		clipped++
	}

	if deps.Store != nil {
		if err := deps.Store.Commit(); err != nil {
			return reportError(deps.Stderr, err)
		}
	}
	fmt.Fprintf(deps.Stderr, "%d clipped, %d duplicate, %d failed\n", clipped, duplicates, failed)

	if clipped == 0 && len(c.Files) > 0 {
		return reportError(deps.Stderr, mdclip.Errorf(mdclip.ENOCONTENT, "no content extracted from any file"))
	}
	return nil
}

func (c *BatchCmd) clipFile(deps *Dependencies, file, pageURL string) (*mdclip.Article, error) {
	r, closeFn, err := openInput(file, nil)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	parser := deps.HTML
	if c.XHTML {
		parser = deps.XHTML
	}
	doc, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}

	article := deps.Clipper.Clip(doc, pageURL)
	if err := article.Validate(); err != nil {
		return nil, err
	}
	return article, nil
}

func (c *BatchCmd) base() (*url.URL, error) {
	if c.BaseURL == "" {
		return nil, nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() {
		return nil, mdclip.Errorf(mdclip.EINVALID, "base URL %q must be absolute", c.BaseURL)
	}
	return u, nil
}

// pageURL locates a file under base. Relative paths keep their directories;
// absolute paths contribute only their file name.
func pageURL(base *url.URL, file string) string {
	if base == nil {
		return ""
	}
	rel := file
	if filepath.IsAbs(file) {
		rel = filepath.Base(file)
	}
	return base.JoinPath(filepath.ToSlash(filepath.Clean(rel))).String()
}
