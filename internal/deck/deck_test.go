package deck

import (
	"strings"
	"testing"

	"github.com/dgallion1/deckfrag/internal/dom"
)

func TestLoad_FindsSlidesContainer(t *testing.T) {
	input := `<!DOCTYPE html><html><body>
		<div class="reveal"><div class="slides">
			<section><h2>One</h2></section>
			<section><h2>Two</h2></section>
			<section><h2>Three</h2></section>
		</div></div>
	</body></html>`

	d, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(d.Slides))
	}
	if !dom.HasClass(d.Container, "slides") {
		t.Error("expected container with slides class")
	}
}

func TestLoad_FallsBackToBodySections(t *testing.T) {
	input := `<html><body><section><p>a</p></section><section><p>b</p></section></body></html>`

	d, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Slides) != 2 {
		t.Fatalf("expected 2 slides from body fallback, got %d", len(d.Slides))
	}
	if d.Container.Data != "body" {
		t.Errorf("expected body container, got <%s>", d.Container.Data)
	}
}

func TestLoad_NoSections(t *testing.T) {
	d, err := Load(strings.NewReader(`<html><body><p>not a deck</p></body></html>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Slides) != 0 {
		t.Fatalf("expected 0 slides, got %d", len(d.Slides))
	}
}

func TestRender_KeepsMutations(t *testing.T) {
	d, err := Load(strings.NewReader(`<html><body><div class="slides"><section><p>a</p></section></div></body></html>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := dom.FirstElementChild(d.Slides[0])
	dom.AddClass(p, "fragment")
	dom.SetAttr(p, "data-fragment-index", "0")

	var out strings.Builder
	if err := d.Render(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `class="fragment"`) {
		t.Errorf("expected fragment class in output, got %s", out.String())
	}
	if !strings.Contains(out.String(), `data-fragment-index="0"`) {
		t.Errorf("expected index attribute in output, got %s", out.String())
	}
}

func TestLoadMarkdown_SplitsOnThematicBreaks(t *testing.T) {
	input := `# Intro

Welcome.

---

## Second

- one
- two

---

## Third

Done.
`
	d, err := LoadMarkdown(strings.NewReader(input), "My Deck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(d.Slides))
	}

	var out strings.Builder
	if err := d.Render(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rendered := out.String()
	for _, want := range []string{"<title>My Deck</title>", "<h1>Intro</h1>", "<h2>Second</h2>", "<li>one</li>", "<h2>Third</h2>"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestLoadMarkdown_NoBreaksYieldsOneSlide(t *testing.T) {
	d, err := LoadMarkdown(strings.NewReader("## Only\n\ntext\n"), "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(d.Slides))
	}
}
