package template

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/randalmurphal/formatparse/types"
)

// IdentityKind says how a field is addressed.
type IdentityKind uint8

const (
	Auto  IdentityKind = iota // {}
	Index                     // {0}
	Name                      // {name}
)

// Identity is the part of a field before the colon.
type Identity struct {
	Kind  IdentityKind
	Name  string // set for Name
	Index int    // written index for Index, assigned auto index for Auto
}

// String returns the identity as written in the template.
func (id Identity) String() string {
	switch id.Kind {
	case Name:
		return id.Name
	case Index:
		return fmt.Sprint(id.Index)
	default:
		return ""
	}
}

// Field is one compiled {identity:spec} placeholder.
type Field struct {
	Identity  Identity
	Spec      types.Spec
	Converter *types.Converter

	// Source is the field as written, braces included.
	Source string
	// Offset is the byte offset of the opening brace in the template.
	Offset int
	// Position is the field's index among positional fields in declaration
	// order, or -1 for named fields.
	Position int
}

// Positional reports whether the field is addressed by position.
func (f *Field) Positional() bool {
	return f.Identity.Kind != Name
}

// Segment is either literal text or a field.
type Segment struct {
	Literal string
	Field   *Field
}

// Template is a compiled format template. It is immutable and safe for
// concurrent use.
type Template struct {
	text       string
	segments   []Segment
	fields     []*Field
	positional int
}

// Values supplies field values for Render.
type Values struct {
	Fixed []any          // positional fields, in declaration order
	Named map[string]any // named fields
}

// Compile parses text into a Template, resolving type codes against reg.
// A nil reg uses the built-in types.
func Compile(text string, reg *types.Registry) (*Template, error) {
	if reg == nil {
		reg = types.Builtins()
	}

	tokens, err := scan(text)
	if err != nil {
		return nil, err
	}

	t := &Template{text: text}
	declared := make(map[string]int)
	nextAuto := 0

	for _, tok := range tokens {
		if tok.field == "" {
			t.segments = append(t.segments, Segment{Literal: tok.literal})
			continue
		}

		field, err := compileField(tok, reg, &nextAuto)
		if err != nil {
			return nil, &CompileError{Template: text, Offset: tok.offset, Field: tok.field, Err: err}
		}

		if field.Identity.Kind == Name {
			if first, ok := declared[field.Identity.Name]; ok {
				return nil, &CompileError{
					Template: text,
					Offset:   tok.offset,
					Field:    tok.field,
					Err:      &RepeatedNameError{Name: field.Identity.Name, First: first, Second: tok.offset},
				}
			}
			declared[field.Identity.Name] = tok.offset
		} else {
			field.Position = t.positional
			t.positional++
		}

		t.fields = append(t.fields, field)
		t.segments = append(t.segments, Segment{Field: field})
	}

	return t, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(text string, reg *types.Registry) *Template {
	t, err := Compile(text, reg)
	if err != nil {
		panic(err)
	}
	return t
}

func compileField(tok token, reg *types.Registry, nextAuto *int) (*Field, error) {
	rawID, rawSpec := splitField(tok.body())
	if strings.ContainsRune(tok.body(), '{') {
		return nil, ErrMalformedSpec
	}

	id, err := parseIdentity(rawID, nextAuto)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, rawID)
	}

	spec, err := parseSpec(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, rawSpec)
	}

	conv, err := reg.Lookup(spec.Type)
	switch {
	case errors.Is(err, types.ErrBadDirective):
		return nil, fmt.Errorf("%w: %w", ErrMalformedSpec, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrUnknownType, err)
	}

	return &Field{
		Identity:  id,
		Spec:      spec,
		Converter: conv,
		Source:    tok.field,
		Offset:    tok.offset,
		Position:  -1,
	}, nil
}

// String returns the template text as written.
func (t *Template) String() string {
	return t.text
}

// Fields returns the fields in declaration order.
func (t *Template) Fields() []*Field {
	return slices.Clone(t.fields)
}

// Segments returns literal and field segments in template order.
func (t *Template) Segments() []Segment {
	return slices.Clone(t.segments)
}

// NumPositional returns the number of positional fields.
func (t *Template) NumPositional() int {
	return t.positional
}

// Names returns the named fields' names in declaration order.
func (t *Template) Names() []string {
	var names []string
	for _, f := range t.fields {
		if f.Identity.Kind == Name {
			names = append(names, f.Identity.Name)
		}
	}
	return names
}

// Render formats values into the template. Named fields read v.Named;
// positional fields read v.Fixed in declaration order.
func (t *Template) Render(v Values) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.Field == nil {
			b.WriteString(seg.Literal)
			continue
		}

		val, ok := v.lookup(seg.Field)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingValue, seg.Field.Source)
		}
		text, err := seg.Field.Converter.Format(val, seg.Field.Spec)
		if err != nil {
			return "", fmt.Errorf("%w: field %s: %w", ErrRender, seg.Field.Source, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func (v Values) lookup(f *Field) (any, bool) {
	if f.Identity.Kind == Name {
		val, ok := v.Named[f.Identity.Name]
		return val, ok
	}
	if f.Position < 0 || f.Position >= len(v.Fixed) {
		return nil, false
	}
	return v.Fixed[f.Position], true
}
