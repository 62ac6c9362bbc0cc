// Package dom provides the small set of tree operations the fragment
// engine needs on top of golang.org/x/net/html nodes: ordered children,
// tag tests, class-list editing and attribute access.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// ElementChildren returns the direct element children of n, in document order.
// Text, comment and doctype nodes are skipped.
func ElementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// FirstElementChild returns the first element child of n, or nil.
func FirstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// HeadingLevel returns 1-6 for h1-h6 tags, 0 otherwise.
func HeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// IsHeading reports whether n is an h1-h6 element.
func IsHeading(n *html.Node) bool {
	return IsElement(n) && HeadingLevel(n.Data) > 0
}

// GetAttr returns the value of the named attribute and whether it is present.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func HasAttr(n *html.Node, key string) bool {
	_, ok := GetAttr(n, key)
	return ok
}

// SetAttr sets the named attribute, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the element's class list contains name.
func HasClass(n *html.Node, name string) bool {
	classes, ok := GetAttr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the element's class list if not already present.
func AddClass(n *html.Node, name string) {
	if HasClass(n, name) {
		return
	}
	classes, ok := GetAttr(n, "class")
	if !ok || classes == "" {
		SetAttr(n, "class", name)
		return
	}
	SetAttr(n, "class", classes+" "+name)
}
