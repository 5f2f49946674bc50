// Package etree adapts well-formed XHTML documents, such as EPUB chapters
// or XHTML exports, parsed with beevik/etree to the mdclip interfaces.
package etree

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/beevik/etree"
	"github.com/fwojciec/mdclip"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure types implement mdclip interfaces at compile time.
var (
	_ mdclip.Parser   = (*Parser)(nil)
	_ mdclip.Document = (*Document)(nil)
	_ mdclip.Node     = element{}
	_ mdclip.Node     = charData{}
)

// Parser parses XHTML with etree. HTML named entities such as &nbsp; are
// accepted.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an XHTML document from r.
func (p *Parser) Parse(r io.Reader) (mdclip.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.Entity = xml.HTMLEntity
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, mdclip.Errorf(mdclip.EINVALID, "failed to parse XHTML: %v", err)
	}
	if doc.Root() == nil {
		return nil, mdclip.Errorf(mdclip.EINVALID, "XHTML document has no root element")
	}
	return newDocument(doc), nil
}

// Document exposes an etree document through mdclip.Document.
//
// CSS selectors are matched by cascadia against a mirror of the element
// tree built with x/net/html nodes; matches map back to etree elements.
type Document struct {
	doc    *etree.Document
	mirror *html.Node
	origin map[*html.Node]*etree.Element
}

func newDocument(doc *etree.Document) *Document {
	d := &Document{
		doc:    doc,
		mirror: &html.Node{Type: html.DocumentNode},
		origin: make(map[*html.Node]*etree.Element),
	}
	d.mirrorElement(doc.Root(), d.mirror)
	return d
}

func (d *Document) mirrorElement(e *etree.Element, parent *html.Node) {
	tag := strings.ToLower(e.Tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range e.Attr {
		n.Attr = append(n.Attr, html.Attribute{Key: strings.ToLower(a.Key), Val: a.Value})
	}
	parent.AppendChild(n)
	d.origin[n] = e

	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.Element:
			d.mirrorElement(t, n)
		case *etree.CharData:
			n.AppendChild(&html.Node{Type: html.TextNode, Data: t.Data})
		}
	}
}

// Title returns the trimmed text of the first <title>.
func (d *Document) Title() string {
	if title := findElement(d.doc.Root(), "title"); title != nil {
		return strings.TrimSpace(element{e: title}.Text())
	}
	return ""
}

// Body returns the <body> element, or the root element for fragments
// without one.
func (d *Document) Body() mdclip.Node {
	if body := findElement(d.doc.Root(), "body"); body != nil {
		return element{e: body}
	}
	return element{e: d.doc.Root()}
}

// Select returns the elements matching a CSS selector in document order.
func (d *Document) Select(selector string) []mdclip.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	matches := cascadia.QueryAll(d.mirror, sel)
	nodes := make([]mdclip.Node, 0, len(matches))
	for _, m := range matches {
		if e, ok := d.origin[m]; ok {
			nodes = append(nodes, element{e: e})
		}
	}
	return nodes
}

// findElement returns the first element named tag at or below e,
// ignoring namespace prefixes.
func findElement(e *etree.Element, tag string) *etree.Element {
	if strings.EqualFold(e.Tag, tag) {
		return e
	}
	for _, child := range e.ChildElements() {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

type element struct {
	e *etree.Element
}

func (x element) Kind() mdclip.NodeKind { return mdclip.ElementNode }

func (x element) Tag() string { return strings.ToLower(x.e.Tag) }

func (x element) Attr(name string) (string, bool) {
	for _, a := range x.e.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Value, true
		}
	}
	return "", false
}

func (x element) Attributes() []mdclip.Attribute {
	if len(x.e.Attr) == 0 {
		return nil
	}
	attrs := make([]mdclip.Attribute, len(x.e.Attr))
	for i, a := range x.e.Attr {
		attrs[i] = mdclip.Attribute{Key: a.Key, Val: a.Value}
	}
	return attrs
}

func (x element) Children() []mdclip.Node {
	var children []mdclip.Node
	for _, tok := range x.e.Child {
		switch t := tok.(type) {
		case *etree.Element:
			children = append(children, element{e: t})
		case *etree.CharData:
			children = append(children, charData{c: t})
		}
	}
	return children
}

func (x element) Text() string {
	return mdclip.TextContent(x)
}

type charData struct {
	c *etree.CharData
}

func (x charData) Kind() mdclip.NodeKind { return mdclip.TextNode }

func (x charData) Tag() string { return "" }

func (x charData) Attr(string) (string, bool) { return "", false }

func (x charData) Attributes() []mdclip.Attribute { return nil }

func (x charData) Children() []mdclip.Node { return nil }

func (x charData) Text() string { return x.c.Data }
