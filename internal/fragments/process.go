// Package fragments implements automatic progressive-reveal fragment
// assignment for presentation decks. For each slide it resolves an effective
// configuration from defaults, global overrides and marker attributes, picks
// the slide's content elements, descends through single-child wrappers and
// tags the resulting siblings with the fragment class and a numeric reveal
// index. Everything mutates the caller's tree in place; the package performs
// no I/O.
package fragments

import (
	"log/slog"

	"github.com/dgallion1/deckfrag/internal/dom"
	"golang.org/x/net/html"
)

// ProcessSlide applies auto-fragmenting to one slide: configuration is
// resolved from the slide and its leading heading, content elements are
// selected and singleton-descended, and the assigner runs when more than one
// candidate remains.
func ProcessSlide(slide *html.Node, defaults Config, global Directive, log *slog.Logger) {
	var heading *html.Node
	if first := dom.FirstElementChild(slide); dom.IsHeading(first) {
		heading = first
	}

	cfg := Resolve(defaults, global, slide, heading, log)
	if !cfg.Enabled {
		return
	}

	els := descendSingletons(ContentElements(slide))
	if len(els) > 1 {
		Assign(els, cfg)
	}
}

// Process runs the full pass: every slide in deck order, then a sweep over
// the whole tree for elements still carrying the marker attribute. Those are
// sub-scopes nested deeper than slide level; each is resolved on its own,
// without slide or heading layering, and assigned over its own children.
func Process(root *html.Node, slides []*html.Node, global Directive, log *slog.Logger) {
	defaults := Defaults()

	for _, slide := range slides {
		ProcessSlide(slide, defaults, global, log)
	}

	for _, el := range markedElements(root) {
		cfg := Resolve(defaults, global, el, nil, log)
		if !cfg.Enabled {
			continue
		}
		children := descendSingletons(dom.ElementChildren(el))
		if len(children) > 1 {
			Assign(children, cfg)
		}
	}
}

// markedElements collects, in document order, every element still carrying
// the marker attribute. Collected up front because resolution consumes the
// attribute.
func markedElements(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && dom.HasAttr(n, MarkerAttr) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}
