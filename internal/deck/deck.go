// Package deck loads and serializes reveal-style presentation documents and
// exposes the slide sequence the fragment engine iterates.
package deck

import (
	"fmt"
	"io"

	"github.com/dgallion1/deckfrag/internal/dom"
	"golang.org/x/net/html"
)

// Deck is a parsed presentation document.
type Deck struct {
	Doc       *html.Node   // document root, owns all nodes
	Container *html.Node   // slides container (class "slides", or body)
	Slides    []*html.Node // direct <section> children of Container, in order
}

// Load parses an HTML deck. Slides are the direct <section> children of the
// element carrying the "slides" class; when no such container exists the
// body's sections are used.
func Load(r io.Reader) (*Deck, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	container := findByClass(doc, "slides")
	if container == nil {
		container = findTag(doc, "body")
	}
	if container == nil {
		return nil, fmt.Errorf("deck has no slides container")
	}

	var slides []*html.Node
	for _, c := range dom.ElementChildren(container) {
		if c.Data == "section" {
			slides = append(slides, c)
		}
	}

	return &Deck{Doc: doc, Container: container, Slides: slides}, nil
}

// Render serializes the deck, including any mutations, back to HTML.
func (d *Deck) Render(w io.Writer) error {
	if err := html.Render(w, d.Doc); err != nil {
		return fmt.Errorf("render deck: %w", err)
	}
	return nil
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && dom.HasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := findByClass(c, class); m != nil {
			return m
		}
	}
	return nil
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := findTag(c, tag); m != nil {
			return m
		}
	}
	return nil
}
