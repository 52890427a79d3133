package parser

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"unicode/utf8"

	"github.com/randalmurphal/formatparse/pattern"
	"github.com/randalmurphal/formatparse/template"
	"github.com/randalmurphal/formatparse/types"
)

// Pattern is a compiled template. It is immutable and safe for concurrent use.
type Pattern struct {
	tmpl   *template.Template
	auto   *pattern.Automaton
	config Config
}

// Compile compiles a format template.
func Compile(format string, opts ...Option) (*Pattern, error) {
	s := newSettings(opts)

	reg, err := types.Builtins().With(s.extra)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", format, err)
	}

	tmpl, err := template.Compile(format, reg)
	if err != nil {
		return nil, err
	}

	auto, err := pattern.Build(tmpl, pattern.Options{CaseSensitive: s.config.CaseSensitive})
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", format, err)
	}

	return &Pattern{tmpl: tmpl, auto: auto, config: s.config}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(format string, opts ...Option) *Pattern {
	p, err := Compile(format, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Format returns the template text the pattern was compiled from.
func (p *Pattern) Format() string {
	return p.tmpl.String()
}

// Template returns the compiled template.
func (p *Pattern) Template() *template.Template {
	return p.tmpl
}

// Config returns the settings the pattern was compiled with.
func (p *Pattern) Config() Config {
	return p.config
}

// Expression returns the regular expression used for searching.
func (p *Pattern) Expression() string {
	return p.auto.Expression()
}

// NamedFields returns the names of the named fields in declaration order.
func (p *Pattern) NamedFields() []string {
	return p.tmpl.Names()
}

// FixedFields returns the number of positional fields.
func (p *Pattern) FixedFields() int {
	return p.tmpl.NumPositional()
}

// Parse matches the whole of s. It returns nil if s does not match or a
// field cannot be converted.
func (p *Pattern) Parse(s string) *Result {
	m := p.Match(s)
	if m == nil {
		return nil
	}
	r, err := m.Evaluate()
	if err != nil {
		logDiscard(p, err)
		return nil
	}
	return r
}

// Search returns the leftmost match anywhere in s.
func (p *Pattern) Search(s string) *Result {
	return p.SearchFrom(s, 0)
}

// SearchFrom returns the leftmost match starting at or after byte offset
// start. A match whose fields cannot be converted is skipped and the search
// resumes one rune after where it began.
func (p *Pattern) SearchFrom(s string, start int) *Result {
	for pos := max(start, 0); pos <= len(s); {
		m := p.SearchMatch(s, pos)
		if m == nil {
			return nil
		}
		r, err := m.Evaluate()
		if err == nil {
			return r
		}
		logDiscard(p, err)

		_, size := utf8.DecodeRuneInString(s[m.loc[0]:])
		if size == 0 {
			return nil
		}
		pos = m.loc[0] + size
	}
	return nil
}

// FindAll yields successive non-overlapping matches in s. Each range over
// the sequence starts again from the beginning of s.
func (p *Pattern) FindAll(s string) iter.Seq[*Result] {
	return func(yield func(*Result) bool) {
		pos := 0
		for pos <= len(s) {
			r := p.SearchFrom(s, pos)
			if r == nil || !yield(r) {
				return
			}
			next := r.Span.End
			if next == r.Span.Start {
				_, size := utf8.DecodeRuneInString(s[next:])
				if size == 0 {
					return
				}
				next += size
			}
			pos = next
		}
	}
}

// Match matches the whole of s without converting any field. It returns
// nil if s does not match structurally.
func (p *Pattern) Match(s string) *Match {
	loc := p.auto.Anchored().FindStringSubmatchIndex(s)
	if loc == nil {
		return nil
	}
	return &Match{pattern: p, subject: s, loc: loc, anchored: true}
}

// SearchMatch finds the leftmost structural match at or after byte offset
// start without converting any field.
func (p *Pattern) SearchMatch(s string, start int) *Match {
	start = max(start, 0)
	if start > len(s) {
		return nil
	}
	loc := p.auto.Search().FindStringSubmatchIndex(s[start:])
	if loc == nil {
		return nil
	}
	for i := range loc {
		if loc[i] >= 0 {
			loc[i] += start
		}
	}
	return &Match{pattern: p, subject: s, loc: loc}
}

func logDiscard(p *Pattern, err error) {
	var ce *ConversionError
	if !errors.As(err, &ce) {
		slog.Debug("discarding match", "format", p.Format(), "error", err)
		return
	}
	slog.Debug("discarding match after conversion failure",
		slog.String("format", p.Format()),
		slog.String("field", ce.Field),
		slog.String("type", ce.Type),
		slog.String("text", ce.Text),
		slog.Any("error", ce.Err))
}

// Parse compiles format and matches the whole of s.
func Parse(format, s string, opts ...Option) (*Result, error) {
	p, err := cachedCompile(format, opts)
	if err != nil {
		return nil, err
	}
	return p.Parse(s), nil
}

// Search compiles format and returns the leftmost match in s.
func Search(format, s string, opts ...Option) (*Result, error) {
	return SearchFrom(format, s, 0, opts...)
}

// SearchFrom compiles format and returns the leftmost match at or after start.
func SearchFrom(format, s string, start int, opts ...Option) (*Result, error) {
	p, err := cachedCompile(format, opts)
	if err != nil {
		return nil, err
	}
	return p.SearchFrom(s, start), nil
}

// FindAll compiles format and yields every non-overlapping match in s.
func FindAll(format, s string, opts ...Option) (iter.Seq[*Result], error) {
	p, err := cachedCompile(format, opts)
	if err != nil {
		return nil, err
	}
	return p.FindAll(s), nil
}
