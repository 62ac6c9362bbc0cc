package deck

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// LoadMarkdown builds a deck from markdown source. Thematic breaks (---)
// separate slides; each slide's blocks are rendered to HTML with goldmark
// and wrapped in a <section>. The result is a regular Deck, so marker
// attributes written in raw HTML inside the markdown survive into the
// fragment pass.
func LoadMarkdown(r io.Reader, title string) (*Deck, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	// Group top-level blocks into slides, splitting on thematic breaks.
	var groups [][]ast.Node
	current := []ast.Node{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.ThematicBreak); ok {
			groups = append(groups, current)
			current = []ast.Node{}
			continue
		}
		current = append(current, n)
	}
	groups = append(groups, current)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title></head><body><div class=\"reveal\"><div class=\"slides\">")
	for _, group := range groups {
		b.WriteString("<section>")
		for _, n := range group {
			if err := md.Renderer().Render(&b, src, n); err != nil {
				return nil, fmt.Errorf("render markdown: %w", err)
			}
		}
		b.WriteString("</section>")
	}
	b.WriteString("</div></div></body></html>")

	return Load(strings.NewReader(b.String()))
}
