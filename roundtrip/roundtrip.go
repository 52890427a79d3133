package roundtrip

import (
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/randalmurphal/formatparse/parser"
	"github.com/randalmurphal/formatparse/template"
)

// Result pairs parsed values with the text rendered from them.
type Result struct {
	Parsed *parser.Result
	Text   string
}

// valueSet is the part of a parse result that round trips are judged on.
type valueSet struct {
	Fixed []any
	Named map[string]any
}

var compareOptions = cmp.Options{
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
}

// Render formats values through the pattern's template.
func Render(p *parser.Pattern, v template.Values) (string, error) {
	text, err := p.Template().Render(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	return text, nil
}

// RenderResult formats the values of a previous parse.
func RenderResult(p *parser.Pattern, r *parser.Result) (string, error) {
	return Render(p, template.Values{Fixed: r.Fixed, Named: r.Named})
}

// Equal reports whether two results hold the same values, ignoring spans.
func Equal(a, b *parser.Result) bool {
	return cmp.Equal(values(a), values(b), compareOptions)
}

// Diff describes how two results' values differ; it is empty when Equal.
func Diff(a, b *parser.Result) string {
	return cmp.Diff(values(a), values(b), compareOptions)
}

func values(r *parser.Result) valueSet {
	return valueSet{Fixed: r.Fixed, Named: r.Named}
}

// Verify parses text, renders the values, parses the rendered text and
// checks that both parses agree.
func Verify(p *parser.Pattern, text string) (*Result, error) {
	first := p.Parse(text)
	if first == nil {
		return nil, ErrNoMatch
	}

	rendered, err := RenderResult(p, first)
	if err != nil {
		return nil, err
	}

	second := p.Parse(rendered)
	if second == nil {
		return nil, &MismatchError{Rendered: rendered, Diff: "rendered text does not match the pattern"}
	}
	if diff := Diff(first, second); diff != "" {
		return nil, &MismatchError{Rendered: rendered, Diff: diff}
	}

	return &Result{Parsed: first, Text: rendered}, nil
}

// Pattern couples a compiled pattern with rendering and verification.
type Pattern struct {
	compiled *parser.Pattern
}

// New compiles format for round-trip use.
func New(format string, opts ...parser.Option) (*Pattern, error) {
	p, err := parser.Compile(format, opts...)
	if err != nil {
		return nil, err
	}
	return &Pattern{compiled: p}, nil
}

// Wrap uses an already compiled pattern.
func Wrap(p *parser.Pattern) *Pattern {
	return &Pattern{compiled: p}
}

// Compiled returns the underlying pattern.
func (rp *Pattern) Compiled() *parser.Pattern {
	return rp.compiled
}

// Parse matches the whole of text.
func (rp *Pattern) Parse(text string) *parser.Result {
	return rp.compiled.Parse(text)
}

// Render formats values through the pattern.
func (rp *Pattern) Render(v template.Values) (string, error) {
	return Render(rp.compiled, v)
}

// RenderResult formats the values of a previous parse.
func (rp *Pattern) RenderResult(r *parser.Result) (string, error) {
	return RenderResult(rp.compiled, r)
}

// Verify checks that text survives a parse-render-parse cycle.
func (rp *Pattern) Verify(text string) (*Result, error) {
	return Verify(rp.compiled, text)
}
