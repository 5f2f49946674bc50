// Package goldmark inspects Markdown with goldmark. It reports which blocks
// a document parses into, so converters can be compared by structure
// rather than by exact text.
package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Stats counts the Markdown constructs of a document.
type Stats struct {
	Headings    int `json:"headings"`
	Paragraphs  int `json:"paragraphs"`
	Links       int `json:"links"`
	Images      int `json:"images"`
	Tables      int `json:"tables"`
	CodeBlocks  int `json:"codeBlocks"`
	ListItems   int `json:"listItems"`
	Blockquotes int `json:"blockquotes"`
}

// engine is stateless after construction and safe for concurrent use.
var engine = goldmark.New(goldmark.WithExtensions(extension.Table))

// Inspect parses markdown as CommonMark with GFM tables and counts its
// constructs.
func Inspect(markdown string) Stats {
	src := []byte(markdown)
	doc := engine.Parser().Parse(text.NewReader(src))

	var s Stats
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			s.Headings++
		case ast.KindParagraph:
			s.Paragraphs++
		case ast.KindLink, ast.KindAutoLink:
			s.Links++
		case ast.KindImage:
			s.Images++
		case extast.KindTable:
			s.Tables++
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			s.CodeBlocks++
		case ast.KindListItem:
			s.ListItems++
		case ast.KindBlockquote:
			s.Blockquotes++
		}
		return ast.WalkContinue, nil
	})
	return s
}

// HeadingLevels returns the level of every ATX or setext heading in
// document order.
func HeadingLevels(markdown string) []int {
	src := []byte(markdown)
	doc := engine.Parser().Parse(text.NewReader(src))

	var levels []int
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			levels = append(levels, h.Level)
		}
		return ast.WalkContinue, nil
	})
	return levels
}
