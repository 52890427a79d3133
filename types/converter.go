package types

import (
	"fmt"
	"unicode/utf8"
)

// ConvertFunc turns matched text into a typed value.
type ConvertFunc func(text string) (any, error)

// FormatFunc renders a value as text its converter's pattern accepts.
type FormatFunc func(v any) (string, error)

type kind uint8

const (
	kindText   kind = iota // any text; padding is indistinguishable from content
	kindClass              // one character class repeated
	kindNumber             // signed numeric literal
	kindTime               // date/time grammar
	kindCustom             // registered through WithPattern
)

// Converter couples the lexical grammar of a type with the functions that
// convert matched text to a value and a value back to text.
//
// Converters are immutable and safe for concurrent use.
type Converter struct {
	kind     kind
	fragment func(Spec, bool) string
	convert  func(string, Spec) (any, error)

	// format returns unpadded text and the alignment used when the spec
	// declares none.
	format func(any, Spec) (string, Align, error)
}

// Fragment returns the regexp fragment accepted for a field with the given
// spec. lazy asks variable-length runs for their non-greedy form, for fields
// that run directly into another field.
func (c *Converter) Fragment(spec Spec, lazy bool) string {
	return c.fragment(spec, lazy)
}

// Convert turns matched text (padding already stripped) into a value.
func (c *Converter) Convert(text string, spec Spec) (any, error) {
	return c.convert(text, spec)
}

// Format renders v for the given spec, padded to its width.
func (c *Converter) Format(v any, spec Spec) (string, error) {
	format := c.format
	if format == nil {
		format = formatDefault
	}
	text, def, err := format(v, spec)
	if err != nil {
		return "", err
	}
	return Pad(text, spec, def), nil
}

// AnyText reports whether the type matches arbitrary text, so that fill
// padding cannot be told apart from content by the grammar alone.
func (c *Converter) AnyText() bool {
	return c.kind == kindText
}

// Textual reports whether the type matches a run of characters whose length
// is bounded by the field's width and precision.
func (c *Converter) Textual() bool {
	return c.kind == kindText || c.kind == kindClass
}

// Numeric reports whether the type accepts a leading sign.
func (c *Converter) Numeric() bool {
	return c.kind == kindNumber
}

// PatternOption configures a converter built by WithPattern.
type PatternOption func(*Converter)

// WithFormatter supplies the render direction for a custom type. Without it,
// values are rendered with fmt.Sprint.
func WithFormatter(fn FormatFunc) PatternOption {
	return func(c *Converter) {
		c.format = func(v any, _ Spec) (string, Align, error) {
			text, err := fn(v)
			return text, AlignLeft, err
		}
	}
}

// WithPattern attaches a regexp fragment to a plain conversion function so it
// can be registered as an extra type. The fragment may contain capture groups;
// fn always receives the whole text the fragment matched. A nil fn keeps the
// matched text as a string.
//
// Example:
//
//	yesno := types.WithPattern(`yes|no`, func(s string) (any, error) {
//	    return s == "yes", nil
//	})
func WithPattern(pattern string, fn ConvertFunc, opts ...PatternOption) *Converter {
	c := &Converter{
		kind:     kindCustom,
		fragment: func(Spec, bool) string { return pattern },
		convert: func(text string, _ Spec) (any, error) {
			if fn == nil {
				return text, nil
			}
			return fn(text)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func formatDefault(v any, spec Spec) (string, Align, error) {
	text := fmt.Sprint(v)
	if spec.HasPrecision {
		text = truncateRunes(text, spec.Precision)
	}
	return text, AlignLeft, nil
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
