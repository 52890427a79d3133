package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/formatparse/template"
	"github.com/randalmurphal/formatparse/types"
)

// finish strips a field's padding and converts what remains.
func finish(f *template.Field, raw string) (any, error) {
	spec := f.Spec
	padded := strings.TrimSpace(raw)

	fail := func(text string, err error) error {
		return &ConversionError{Field: f.Source, Type: spec.Type, Text: text, Err: err}
	}

	bounded := spec.Align != types.AlignNone || f.Converter.Textual()
	if bounded && spec.HasWidth && utf8.RuneCountInString(padded) > spec.Width {
		return nil, fail(padded, fmt.Errorf("%w: %d", ErrWidthExceeded, spec.Width))
	}

	content := stripFill(padded, spec)
	if content == "" && padded != "" && f.Converter.Numeric() {
		// the number was all fill, as in "00000" for {:0>5d}
		content = string(spec.FillRune())
	}

	if f.Converter.Textual() && spec.HasPrecision && utf8.RuneCountInString(content) > spec.Precision {
		return nil, fail(content, fmt.Errorf("%w: %d", ErrPrecisionExceeded, spec.Precision))
	}

	v, err := f.Converter.Convert(content, spec)
	if err != nil {
		return nil, fail(content, err)
	}
	return v, nil
}

// stripFill removes the fill run on the padded side(s). Runs end at the
// first rune that differs from the fill; fill runes inside content stay.
func stripFill(text string, spec types.Spec) string {
	fill := string(spec.FillRune())
	switch spec.Align {
	case types.AlignRight:
		return strings.TrimLeft(text, fill)
	case types.AlignLeft:
		return strings.TrimRight(text, fill)
	case types.AlignCenter:
		return strings.TrimRight(strings.TrimLeft(text, fill), fill)
	default:
		return text
	}
}
