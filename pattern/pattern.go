package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/randalmurphal/formatparse/template"
	"github.com/randalmurphal/formatparse/types"
)

// ErrBadFragment is returned when a custom type's fragment is not a valid regexp.
var ErrBadFragment = errors.New("invalid type fragment")

// Options controls how the expressions are built.
type Options struct {
	// CaseSensitive disables the (?i) flag for literals and fragments.
	CaseSensitive bool
}

// Slot maps a field to the capture group holding its text.
type Slot struct {
	Field *template.Field
	Group int
}

// Automaton holds the anchored and search expressions for one template.
// It is immutable and safe for concurrent use.
type Automaton struct {
	expr     string
	anchored *regexp.Regexp
	search   *regexp.Regexp
	slots    []Slot
}

// Build assembles the expressions for t.
func Build(t *template.Template, opts Options) (*Automaton, error) {
	var b strings.Builder
	slots := make([]Slot, 0, len(t.Fields()))
	group := 1

	segments := t.Segments()
	for i, seg := range segments {
		if seg.Field == nil {
			b.WriteString(regexp.QuoteMeta(seg.Literal))
			continue
		}

		f := seg.Field
		spec := f.Spec
		lazy := i+1 < len(segments) && segments[i+1].Field != nil && !spec.HasWidth

		frag := f.Converter.Fragment(spec, lazy)
		inner, err := regexp.Compile(`(?:` + frag + `)`)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %w", ErrBadFragment, f.Source, err)
		}

		b.WriteByte('(')
		b.WriteString(fieldBody(f.Converter, spec, frag))
		b.WriteByte(')')

		slots = append(slots, Slot{Field: f, Group: group})
		group += 1 + inner.NumSubexp()
	}

	flags := "(?s)"
	if !opts.CaseSensitive {
		flags = "(?si)"
	}
	expr := flags + b.String()

	anchored, err := regexp.Compile(flags + `\A(?:` + b.String() + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFragment, err)
	}
	search, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFragment, err)
	}

	return &Automaton{expr: expr, anchored: anchored, search: search, slots: slots}, nil
}

// fieldBody wraps a fragment with the padding its spec allows. Text types
// with a width already cover their padding with the width-bounded run.
func fieldBody(conv *types.Converter, spec types.Spec, frag string) string {
	body := `(?:` + frag + `)`

	if spec.Align != types.AlignNone && !(conv.AnyText() && spec.HasWidth) {
		fill := regexp.QuoteMeta(string(spec.FillRune())) + `*`
		switch spec.Align {
		case types.AlignRight:
			body = fill + body
		case types.AlignLeft:
			body = body + fill
		case types.AlignCenter:
			body = fill + body + fill
		}
	}

	if spec.Align != types.AlignNone || spec.HasWidth {
		body = `\s*` + body + `\s*`
	}
	return body
}

// Expression returns the unanchored expression, flags included.
func (a *Automaton) Expression() string {
	return a.expr
}

// Anchored returns the expression that must match the whole subject.
func (a *Automaton) Anchored() *regexp.Regexp {
	return a.anchored
}

// Search returns the unanchored expression.
func (a *Automaton) Search() *regexp.Regexp {
	return a.search
}

// Slots returns one slot per field, in declaration order.
func (a *Automaton) Slots() []Slot {
	return a.slots
}
