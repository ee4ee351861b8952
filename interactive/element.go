// Package interactive implements the pointer-driven half of the
// classification engine: per-element scoring, ancestor-walk candidate
// selection, and capture resolution for a human-confirmed selection.
//
// The DOM is modeled over golang.org/x/net/html nodes; geometry comes from
// a Layout implementation so the scoring logic stays deterministic and
// testable outside a browser. All handlers are synchronous: no network
// calls ever occur inside the scoring path.
package interactive

import (
	"strings"

	"golang.org/x/net/html"
)

// Element wraps an html.Node with the read-only accessors the scorer and
// capture resolver need. The zero value is not usable; obtain elements
// from ParseDocument or navigation methods.
type Element struct {
	node *html.Node
}

// ParseDocument parses an HTML string and returns the root element.
func ParseDocument(source string) (*Element, error) {
	node, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	return &Element{node: node}, nil
}

// NewElement wraps an existing parsed node.
func NewElement(node *html.Node) *Element {
	if node == nil {
		return nil
	}
	return &Element{node: node}
}

// Node exposes the underlying parse node.
func (e *Element) Node() *html.Node { return e.node }

// TagName returns the lowercase tag name, or "" for non-element nodes.
func (e *Element) TagName() string {
	if e.node.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(e.node.Data)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// ClassID returns the element's class and id attributes joined, lowercased.
// Convenient haystack for class/id pattern checks.
func (e *Element) ClassID() string {
	return strings.ToLower(e.Attr("class") + " " + e.Attr("id"))
}

// Parent returns the parent element, or nil at the tree root.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	for p != nil && p.Type != html.ElementNode {
		p = p.Parent
	}
	return NewElement(p)
}

// Text returns the concatenated text content with collapsed whitespace.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Descendants returns all descendant elements with the given tag name, in
// document order. An empty tag matches every element.
func (e *Element) Descendants(tag string) []*Element {
	var out []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (tag == "" || strings.EqualFold(c.Data, tag)) {
				out = append(out, NewElement(c))
			}
			walk(c)
		}
	}
	walk(e.node)
	return out
}

// Find returns the first descendant element (depth-first) for which the
// predicate returns true.
func (e *Element) Find(pred func(*Element) bool) *Element {
	var found *Element
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				el := NewElement(c)
				if pred(el) {
					found = el
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(e.node)
	return found
}

// Closest walks from the element upward (inclusive) and returns the first
// element for which the predicate returns true.
func (e *Element) Closest(pred func(*Element) bool) *Element {
	for cur := e; cur != nil; cur = cur.Parent() {
		if cur.TagName() == "" {
			continue
		}
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// OuterHTML renders the element back to HTML.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	if err := html.Render(&b, e.node); err != nil {
		return ""
	}
	return b.String()
}

// FindByID returns the first descendant with the given id attribute.
// Test fixtures rely on this to address synthetic elements.
func (e *Element) FindByID(id string) *Element {
	return e.Find(func(el *Element) bool { return el.Attr("id") == id })
}
