package fragments

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dgallion1/deckfrag/internal/dom"
	"golang.org/x/net/html"
)

// Reserved markup names shared with the reveal engine.
const (
	// MarkerAttr is the one-shot directive attribute; it is removed once read.
	MarkerAttr = "data-auto-fragment"
	// FragmentClass marks an element as a progressive-reveal fragment.
	FragmentClass = "fragment"
	// IndexAttr records a fragment's reveal order.
	IndexAttr = "data-fragment-index"
	// TitleClass marks a title slide; auto-fragmenting is off there by default.
	TitleClass = "title"
	// NotesClass marks a presenter-notes aside, never selected as content.
	NotesClass = "notes"
)

// Config is the effective auto-fragment configuration for one scope.
type Config struct {
	Enabled      bool
	Skip         int // leading siblings excluded from fragment behavior
	IndexStart   int
	IndexStep    int
	InitRelative bool // IndexStart is an offset on an ancestor's index
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Enabled:   true,
		IndexStep: 1,
	}
}

// Directive is a partial configuration parsed from a marker attribute or
// supplied as a global override. Nil fields leave the underlying value
// unchanged when applied.
type Directive struct {
	Enabled      *bool
	Skip         *int
	IndexStart   *int
	IndexStep    *int
	InitRelative *bool
}

// Apply merges the directive into cfg field-by-field and returns the result.
func (d Directive) Apply(cfg Config) Config {
	if d.Enabled != nil {
		cfg.Enabled = *d.Enabled
	}
	if d.Skip != nil {
		cfg.Skip = *d.Skip
	}
	if d.IndexStart != nil {
		cfg.IndexStart = *d.IndexStart
	}
	if d.IndexStep != nil {
		cfg.IndexStep = *d.IndexStep
	}
	if d.InitRelative != nil {
		cfg.InitRelative = *d.InitRelative
	}
	return cfg
}

// ParseDirective parses a marker-attribute value.
//
// Presence of the attribute implies enabled. The empty string sets nothing
// else; the exact literal "false" disables the scope. Any other value holds
// up to three comma-separated positional fields: skip, index start, index
// step. A leading '+' on the index-start field makes it relative to an
// ancestor's index. Empty fields are left unset.
//
// Fields that fail integer parsing are left unset and reported in the
// returned error; the rest of the directive still applies.
func ParseDirective(value string) (Directive, error) {
	enabled := true
	d := Directive{Enabled: &enabled}

	if value == "" {
		return d, nil
	}
	if value == "false" {
		enabled = false
		return d, nil
	}

	var errs []error
	fields := strings.SplitN(value, ",", 3)

	if f := strings.TrimSpace(fields[0]); f != "" {
		if n, err := strconv.Atoi(f); err != nil {
			errs = append(errs, fmt.Errorf("skip field %q: not an integer", f))
		} else {
			d.Skip = &n
		}
	}
	if len(fields) > 1 {
		if f := strings.TrimSpace(fields[1]); f != "" {
			rel := strings.HasPrefix(f, "+")
			if n, err := strconv.Atoi(f); err != nil {
				errs = append(errs, fmt.Errorf("index-start field %q: not an integer", f))
			} else {
				d.IndexStart = &n
				d.InitRelative = &rel
			}
		}
	}
	if len(fields) > 2 {
		if f := strings.TrimSpace(fields[2]); f != "" {
			if n, err := strconv.Atoi(f); err != nil {
				errs = append(errs, fmt.Errorf("index-step field %q: not an integer", f))
			} else {
				d.IndexStep = &n
			}
		}
	}

	return d, errors.Join(errs...)
}

// Resolve computes the effective configuration for a scope by layering, in
// increasing precedence: defaults, the global directive, title-slide
// suppression, the scope element's marker attribute and the heading
// element's marker attribute. Marker attributes are consumed as they are
// read; heading may be nil.
func Resolve(defaults Config, global Directive, scope, heading *html.Node, log *slog.Logger) Config {
	cfg := global.Apply(defaults)

	if scope.Data == "section" && dom.HasClass(scope, TitleClass) {
		cfg.Enabled = false
	}

	cfg = applyMarker(cfg, scope, log)
	if heading != nil {
		cfg = applyMarker(cfg, heading, log)
	}
	return cfg
}

func applyMarker(cfg Config, n *html.Node, log *slog.Logger) Config {
	v, ok := dom.GetAttr(n, MarkerAttr)
	if !ok {
		return cfg
	}
	dom.RemoveAttr(n, MarkerAttr)

	d, err := ParseDirective(v)
	if err != nil {
		log.Warn("malformed auto-fragment directive", "value", v, "error", err)
	}
	return d.Apply(cfg)
}
