package parser

import (
	"github.com/randalmurphal/formatparse/template"
)

// Span is a half-open byte range in the subject.
type Span struct {
	Start int
	End   int
}

// MatchSpan locates a whole match. Tail is the subject text after the
// match for search results and empty for anchored parses.
type MatchSpan struct {
	Start int
	End   int
	Tail  string
}

// Result holds the values of one successful match.
type Result struct {
	// Fixed holds positional fields in declaration order.
	Fixed []any
	// Named holds named fields.
	Named map[string]any

	Span       MatchSpan
	FixedSpans []Span
	NamedSpans map[string]Span
}

// Match is a structural match whose fields have not been converted yet.
type Match struct {
	pattern  *Pattern
	subject  string
	loc      []int
	anchored bool
}

// Span returns the location of the whole match.
func (m *Match) Span() MatchSpan {
	span := MatchSpan{Start: m.loc[0], End: m.loc[1]}
	if !m.anchored {
		span.Tail = m.subject[m.loc[1]:]
	}
	return span
}

// Text returns the raw captured text of each field, keyed like Result.
func (m *Match) Text() (fixed []string, named map[string]string) {
	fixed = make([]string, m.pattern.tmpl.NumPositional())
	named = make(map[string]string)
	for _, slot := range m.pattern.auto.Slots() {
		raw, _ := m.capture(slot.Group)
		if slot.Field.Positional() {
			fixed[slot.Field.Position] = raw
			continue
		}
		named[slot.Field.Identity.Name] = raw
	}
	return fixed, named
}

func (m *Match) capture(group int) (string, Span) {
	start, end := m.loc[2*group], m.loc[2*group+1]
	if start < 0 {
		return "", Span{Start: -1, End: -1}
	}
	return m.subject[start:end], Span{Start: start, End: end}
}

// Evaluate strips padding and converts every field. It fails with a
// *ConversionError for the first field that cannot be converted.
func (m *Match) Evaluate() (*Result, error) {
	n := m.pattern.tmpl.NumPositional()
	r := &Result{
		Fixed:      make([]any, n),
		Named:      make(map[string]any),
		Span:       m.Span(),
		FixedSpans: make([]Span, n),
		NamedSpans: make(map[string]Span),
	}

	for _, slot := range m.pattern.auto.Slots() {
		raw, span := m.capture(slot.Group)
		v, err := finish(slot.Field, raw)
		if err != nil {
			return nil, err
		}
		r.store(slot.Field, v, span)
	}
	return r, nil
}

func (r *Result) store(f *template.Field, v any, span Span) {
	if f.Positional() {
		r.Fixed[f.Position] = v
		r.FixedSpans[f.Position] = span
		return
	}
	r.Named[f.Identity.Name] = v
	r.NamedSpans[f.Identity.Name] = span
}
