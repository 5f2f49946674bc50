package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdclip"
	"golang.org/x/net/html"
)

// Ensure types implement mdclip interfaces at compile time.
var (
	_ mdclip.Parser   = (*Parser)(nil)
	_ mdclip.Document = (*Document)(nil)
	_ mdclip.Node     = node{}
)

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML document from r.
func (p *Parser) Parse(r io.Reader) (mdclip.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, mdclip.Errorf(mdclip.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(s string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, mdclip.Errorf(mdclip.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document exposes a goquery document through mdclip.Document.
// It is read-only: nothing in this package mutates the parsed tree.
type Document struct {
	doc *goquery.Document
}

// Title returns the trimmed text of the first <title>.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Body returns the body element, or nil if there is none.
func (d *Document) Body() mdclip.Node {
	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		return nil
	}
	return node{n: body.Get(0)}
}

// Select returns the elements matching a CSS selector in document order.
func (d *Document) Select(selector string) []mdclip.Node {
	sel := d.doc.Find(selector)
	nodes := make([]mdclip.Node, 0, sel.Length())
	for _, n := range sel.Nodes {
		if n.Type == html.ElementNode {
			nodes = append(nodes, node{n: n})
		}
	}
	return nodes
}

// Wrap exposes an x/net/html node as an mdclip.Node.
// Returns nil for nodes that are neither text nor elements.
func Wrap(n *html.Node) mdclip.Node {
	if n == nil || (n.Type != html.TextNode && n.Type != html.ElementNode) {
		return nil
	}
	return node{n: n}
}

// node adapts *html.Node. The value is comparable and two values are equal
// exactly when they wrap the same html.Node.
type node struct {
	n *html.Node
}

func (x node) Kind() mdclip.NodeKind {
	if x.n.Type == html.TextNode {
		return mdclip.TextNode
	}
	return mdclip.ElementNode
}

func (x node) Tag() string {
	if x.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(x.n.Data)
}

func (x node) Attr(name string) (string, bool) {
	for _, a := range x.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (x node) Attributes() []mdclip.Attribute {
	if len(x.n.Attr) == 0 {
		return nil
	}
	attrs := make([]mdclip.Attribute, len(x.n.Attr))
	for i, a := range x.n.Attr {
		attrs[i] = mdclip.Attribute{Key: a.Key, Val: a.Val}
	}
	return attrs
}

func (x node) Children() []mdclip.Node {
	var children []mdclip.Node
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode || c.Type == html.ElementNode {
			children = append(children, node{n: c})
		}
	}
	return children
}

func (x node) Text() string {
	if x.n.Type == html.TextNode {
		return x.n.Data
	}
	return goquery.NewDocumentFromNode(x.n).Text()
}
