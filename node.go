package mdclip

import "strings"

// NodeKind distinguishes text nodes from element nodes.
type NodeKind int

const (
	// TextNode holds character data.
	TextNode NodeKind = iota + 1

	// ElementNode holds a tag name, attributes and children.
	ElementNode
)

// Node is a read-only view of a node in a document tree.
//
// Implementations must be comparable with == so that the same underlying
// node always yields equal values. The engine relies on this to
// de-duplicate candidates and to recognise sanitizer targets.
type Node interface {
	// Kind reports whether the node is a text or an element node.
	Kind() NodeKind

	// Tag returns the lower-case tag name of an element node.
	// Text nodes return "".
	Tag() string

	// Attr returns the value of the named attribute and whether it is present.
	// Attribute names are matched case-insensitively.
	Attr(name string) (string, bool)

	// Attributes returns all attributes of an element node in source order.
	Attributes() []Attribute

	// Children returns the text and element children in document order.
	// Comments, doctypes and processing instructions are never returned.
	Children() []Node

	// Text returns the character data of a text node, or the concatenated
	// character data of all descendant text nodes of an element.
	Text() string
}

// Attribute is a single element attribute.
type Attribute struct {
	Key string
	Val string
}

// Ensure Element and Text implement Node at compile time.
var (
	_ Node = (*Element)(nil)
	_ Node = Text("")
)

// Element is an owned, mutable element node. The engine builds Element
// trees when it needs a private copy of a document subtree.
type Element struct {
	Name  string
	Attrs []Attribute
	Nodes []Node

	// Origin is the node this element was copied from, if any.
	Origin Node
}

// NewElement returns an element with a lower-cased tag name.
func NewElement(name string, attrs ...Attribute) *Element {
	return &Element{Name: strings.ToLower(name), Attrs: attrs}
}

// Append adds children to the element and returns it.
func (e *Element) Append(children ...Node) *Element {
	e.Nodes = append(e.Nodes, children...)
	return e
}

func (e *Element) Kind() NodeKind { return ElementNode }

func (e *Element) Tag() string { return strings.ToLower(e.Name) }

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) Attributes() []Attribute { return e.Attrs }

func (e *Element) Children() []Node { return e.Nodes }

func (e *Element) Text() string { return TextContent(e) }

// Text is an owned text node.
type Text string

func (t Text) Kind() NodeKind { return TextNode }

func (t Text) Tag() string { return "" }

func (t Text) Attr(string) (string, bool) { return "", false }

func (t Text) Attributes() []Attribute { return nil }

func (t Text) Children() []Node { return nil }

func (t Text) Text() string { return string(t) }

// TextContent concatenates the character data of n and all its descendants
// using only the Node interface.
func TextContent(n Node) string {
	if n == nil {
		return ""
	}
	if n.Kind() == TextNode {
		return n.Text()
	}
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	for _, c := range n.Children() {
		if c.Kind() == TextNode {
			b.WriteString(c.Text())
			continue
		}
		writeText(b, c)
	}
}
