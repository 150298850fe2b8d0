// Package dom realizes palettes as HTML documents. Tiles are mounted into a
// container element looked up by id; mounting again replaces whatever the
// container held before.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"swatch-grid/pkg/sharedTypes"
)

// FindByID returns the first element in document order whose id attribute
// equals id, or nil
func FindByID(n *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Mount replaces the children of the element with id mountID by one node
// per tile. It reports false and leaves doc untouched when no such element
// exists.
func Mount(doc *html.Node, mountID string, tiles []sharedTypes.Tile) bool {
	container := FindByID(doc, mountID)
	if container == nil {
		return false
	}

	nodes := make([]*html.Node, len(tiles))
	for i, t := range tiles {
		nodes[i] = TileNode(t)
	}
	replaceChildren(container, nodes...)
	return true
}

func replaceChildren(parent *html.Node, children ...*html.Node) {
	for c := parent.FirstChild; c != nil; c = parent.FirstChild {
		parent.RemoveChild(c)
	}
	for _, c := range children {
		parent.AppendChild(c)
	}
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasClass reports whether n's class attribute lists class
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// FindAll returns every element below n, n included, for which match is true
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
