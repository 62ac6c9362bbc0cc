package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseBody(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse snippet: %v", err)
	}
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if body == nil {
		t.Fatal("no body in parsed snippet")
	}
	return body
}

func TestElementChildren_SkipsTextNodes(t *testing.T) {
	body := parseBody(t, `<p>a</p> text <p>b</p><!-- comment --><p>c</p>`)
	children := ElementChildren(body)
	if len(children) != 3 {
		t.Fatalf("expected 3 element children, got %d", len(children))
	}
	for _, c := range children {
		if c.Data != "p" {
			t.Errorf("expected <p>, got <%s>", c.Data)
		}
	}
}

func TestFirstElementChild(t *testing.T) {
	body := parseBody(t, ` leading text <h2>T</h2><p>a</p>`)
	first := FirstElementChild(body)
	if first == nil || first.Data != "h2" {
		t.Fatalf("expected <h2>, got %v", first)
	}
	if FirstElementChild(first.FirstChild) != nil {
		t.Error("expected nil for a node without element children")
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{"h1", 1},
		{"h6", 6},
		{"h7", 0},
		{"p", 0},
		{"header", 0},
	}
	for _, tt := range tests {
		if got := HeadingLevel(tt.tag); got != tt.want {
			t.Errorf("HeadingLevel(%q): expected %d, got %d", tt.tag, tt.want, got)
		}
	}
}

func TestAttrAccess(t *testing.T) {
	body := parseBody(t, `<p data-x="1">a</p>`)
	p := FirstElementChild(body)

	if v, ok := GetAttr(p, "data-x"); !ok || v != "1" {
		t.Errorf("expected data-x=1, got %q ok=%v", v, ok)
	}
	if HasAttr(p, "data-y") {
		t.Error("expected data-y absent")
	}

	SetAttr(p, "data-x", "2")
	if v, _ := GetAttr(p, "data-x"); v != "2" {
		t.Errorf("expected overwrite to 2, got %q", v)
	}

	SetAttr(p, "data-y", "new")
	if !HasAttr(p, "data-y") {
		t.Error("expected data-y after SetAttr")
	}

	RemoveAttr(p, "data-x")
	if HasAttr(p, "data-x") {
		t.Error("expected data-x removed")
	}
	RemoveAttr(p, "data-x") // removing twice is fine
}

func TestClassList(t *testing.T) {
	body := parseBody(t, `<p class="note highlight">a</p><p>b</p>`)
	children := ElementChildren(body)
	withClasses, bare := children[0], children[1]

	if !HasClass(withClasses, "note") || !HasClass(withClasses, "highlight") {
		t.Error("expected both classes present")
	}
	if HasClass(withClasses, "high") {
		t.Error("substring must not match a class")
	}

	AddClass(withClasses, "note")
	if v, _ := GetAttr(withClasses, "class"); v != "note highlight" {
		t.Errorf("adding an existing class must not duplicate it, got %q", v)
	}

	AddClass(withClasses, "fragment")
	if v, _ := GetAttr(withClasses, "class"); v != "note highlight fragment" {
		t.Errorf("expected appended class, got %q", v)
	}

	AddClass(bare, "fragment")
	if v, _ := GetAttr(bare, "class"); v != "fragment" {
		t.Errorf("expected fresh class attribute, got %q", v)
	}
}
