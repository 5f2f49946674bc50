package mock

import (
	"io"

	"github.com/fwojciec/mdclip"
)

var (
	_ mdclip.Parser   = (*Parser)(nil)
	_ mdclip.Document = (*Document)(nil)
)

// Parser is a mock implementation of mdclip.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (mdclip.Document, error)
}

func (p *Parser) Parse(r io.Reader) (mdclip.Document, error) {
	return p.ParseFn(r)
}

// Document is a mock implementation of mdclip.Document.
type Document struct {
	TitleFn  func() string
	BodyFn   func() mdclip.Node
	SelectFn func(selector string) []mdclip.Node
}

func (d *Document) Title() string {
	return d.TitleFn()
}

func (d *Document) Body() mdclip.Node {
	return d.BodyFn()
}

func (d *Document) Select(selector string) []mdclip.Node {
	return d.SelectFn(selector)
}
