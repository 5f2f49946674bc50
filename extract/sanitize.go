package extract

import "github.com/fwojciec/mdclip"

// Clone deep-copies the element n into an owned tree. Every copied element
// records the node it was copied from in Origin. Returns nil if n is not
// an element.
func Clone(n mdclip.Node) *mdclip.Element {
	if n == nil || n.Kind() != mdclip.ElementNode {
		return nil
	}
	return cloneElement(n)
}

func cloneElement(n mdclip.Node) *mdclip.Element {
	el := &mdclip.Element{
		Name:   tagName(n),
		Attrs:  append([]mdclip.Attribute(nil), n.Attributes()...),
		Origin: n,
	}
	children := n.Children()
	if len(children) > 0 {
		el.Nodes = make([]mdclip.Node, 0, len(children))
	}
	for _, c := range children {
		if c.Kind() == mdclip.TextNode {
			el.Nodes = append(el.Nodes, mdclip.Text(c.Text()))
			continue
		}
		el.Nodes = append(el.Nodes, cloneElement(c))
	}
	return el
}

// Sanitize removes, in place, every descendant element of root for which
// remove returns true, together with its subtree. root must be an owned
// copy (see Clone); the tree it was copied from is never touched.
func Sanitize(root *mdclip.Element, remove func(*mdclip.Element) bool) {
	if root == nil {
		return
	}
	kept := root.Nodes[:0]
	for _, c := range root.Nodes {
		el, ok := c.(*mdclip.Element)
		if !ok {
			kept = append(kept, c)
			continue
		}
		if remove(el) {
			continue
		}
		Sanitize(el, remove)
		kept = append(kept, el)
	}
	clear(root.Nodes[len(kept):])
	root.Nodes = kept
}

// OriginIn returns a Sanitize predicate that removes copies of the given nodes.
func OriginIn(nodes []mdclip.Node) func(*mdclip.Element) bool {
	set := make(map[mdclip.Node]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	return func(el *mdclip.Element) bool {
		if el.Origin == nil {
			return false
		}
		_, ok := set[el.Origin]
		return ok
	}
}
