package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/mdclip"
	"github.com/fwojciec/mdclip/goldmark"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// engineMethod names the engine's row in the comparison.
const engineMethod = "mdclip"

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	r, closeFn, err := openInput(c.File, deps.Stdin)
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	defer closeFn()

	raw, err := io.ReadAll(r)
	if err != nil {
		return reportError(deps.Stderr, mdclip.Errorf(mdclip.EINVALID, "cannot read %q: %v", c.File, err))
	}

	doc, err := deps.HTML.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	methods := []string{engineMethod}
	articles := []*mdclip.Article{deps.Clipper.Clip(doc, c.URL)}
	for _, b := range deps.Baselines {
		a, err := runBaseline(b, string(raw), c.URL)
		if err != nil {
			warn(deps.Stderr, "%s: %s", b.Name, mdclip.ErrorMessage(err))
			a = &mdclip.Article{URL: c.URL}
		}
		methods = append(methods, b.Name)
		articles = append(articles, a)
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Method", "Title", "Chars", "Headings", "Outline", "Links", "Images", "Tables", "Code", "List items"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignLeft, WidthMax: 40},
	})
	for i, a := range articles {
		s := goldmark.Inspect(a.Content)
		t.AppendRow(table.Row{
			methods[i], a.Title, len(a.Content),
			s.Headings, outline(goldmark.HeadingLevels(a.Content)),
			s.Links, s.Images, s.Tables, s.CodeBlocks, s.ListItems,
		})
	}
	t.Render()

	if c.Show {
		for i, a := range articles {
			if a.Title == "" {
				a.Title = methods[i]
			} else {
				a.Title = methods[i] + ": " + a.Title
			}
		}
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, mdclip.FormatArticles(articles))
	}
	return nil
}

// outline renders heading levels as "h1 h2 h2", truncated to keep the
// table narrow.
func outline(levels []int) string {
	const maxHeadings = 8
	parts := make([]string, 0, min(len(levels), maxHeadings)+1)
	for i, level := range levels {
		if i == maxHeadings {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, "h"+strconv.Itoa(level))
	}
	return strings.Join(parts, " ")
}

// runBaseline extracts content HTML with a third-party extractor and
// converts it to Markdown.
func runBaseline(b Baseline, raw, pageURL string) (*mdclip.Article, error) {
	res, err := b.Extractor.Extract(raw, pageURL)
	if err != nil {
		return nil, err
	}
	a := &mdclip.Article{Title: res.Title, URL: pageURL}
	if strings.TrimSpace(res.ContentHTML) == "" {
		return a, nil
	}
	a.Content, err = b.Converter.Convert(res.ContentHTML, pageURL)
	if err != nil {
		return nil, err
	}
	return a, nil
}
