package fragments

import (
	"strconv"

	"github.com/dgallion1/deckfrag/internal/dom"
	"golang.org/x/net/html"
)

// Assign marks the ordered sibling elements as fragments and assigns each a
// reveal index, in place. Elements already carrying the fragment class or an
// index attribute keep what the author wrote. Positions are 1-based; the
// first cfg.Skip elements are not tagged but still receive an index.
func Assign(elements []*html.Node, cfg Config) {
	if !cfg.Enabled || len(elements) == 0 {
		return
	}

	base := cfg.IndexStart
	if cfg.InitRelative {
		base += ancestorIndex(elements[0])
	}

	for i, el := range elements {
		if i+1 > cfg.Skip && !dom.HasClass(el, FragmentClass) {
			dom.AddClass(el, FragmentClass)
		}
		if !dom.HasAttr(el, IndexAttr) {
			dom.SetAttr(el, IndexAttr, strconv.Itoa(base+i*cfg.IndexStep))
		}
	}
}

// ancestorIndex walks upward from el looking for the nearest ancestor that
// already carries a fragment index, stopping at the slide boundary so the
// search stays inside one slide. Returns 0 when no such ancestor exists or
// its index is not numeric.
func ancestorIndex(el *html.Node) int {
	for p := el.Parent; p != nil; p = p.Parent {
		if v, ok := dom.GetAttr(p, IndexAttr); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0
			}
			return n
		}
		if p.Type == html.ElementNode && p.Data == "section" {
			break
		}
	}
	return 0
}

// ContentElements returns the direct element children of a slide that are
// candidates for auto-fragmenting: a heading is excluded when it is the very
// first child, and presenter-notes asides are excluded wherever they appear.
func ContentElements(slide *html.Node) []*html.Node {
	var out []*html.Node
	for i, c := range dom.ElementChildren(slide) {
		if i == 0 && dom.IsHeading(c) {
			continue
		}
		if c.Data == "aside" && dom.HasClass(c, NotesClass) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// descendSingletons follows chains of single-child wrappers: a one-element
// candidate list is replaced by that element's children until the list has
// zero or more than one elements. Layout containers around slide content
// therefore do not defeat auto-fragmenting.
func descendSingletons(list []*html.Node) []*html.Node {
	for len(list) == 1 {
		list = dom.ElementChildren(list[0])
	}
	return list
}
