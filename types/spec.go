package types

import (
	"strconv"
	"strings"
)

// Align is the alignment token of a format spec.
type Align uint8

const (
	AlignNone   Align = iota
	AlignLeft         // <
	AlignRight        // >
	AlignCenter       // ^
)

// String returns the template token for the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	default:
		return ""
	}
}

// Sign is the sign token of a format spec.
type Sign uint8

const (
	SignNone  Sign = iota
	SignPlus       // +
	SignMinus      // -
	SignSpace      // ' '
)

// String returns the template token for the sign.
func (s Sign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	case SignSpace:
		return " "
	default:
		return ""
	}
}

// Spec is the format-spec part of a field, everything after the colon in
// "{name:spec}".
type Spec struct {
	// Fill is the padding rune. Zero means unset, which pads with spaces.
	// Fill only matters when Align is set.
	Fill rune

	Align     Align
	Sign      Sign
	Alternate bool // '#'
	Zero      bool // '0' before the width

	// Width is the maximum length of the field including fill padding.
	Width    int
	HasWidth bool

	// Precision bounds the content length for text types and the number of
	// fractional digits for floating point types.
	Precision    int
	HasPrecision bool

	Grouping bool // ','

	// Type is the type code, possibly empty.
	Type string
}

// FillRune returns the padding rune, defaulting to a space.
func (s Spec) FillRune() rune {
	if s.Fill == 0 {
		return ' '
	}
	return s.Fill
}

// HasFill reports whether the spec declared an explicit fill rune.
func (s Spec) HasFill() bool {
	return s.Fill != 0
}

// String reassembles the spec in template syntax.
func (s Spec) String() string {
	var b strings.Builder
	if s.Align != AlignNone {
		if s.Fill != 0 {
			b.WriteRune(s.Fill)
		}
		b.WriteString(s.Align.String())
	}
	b.WriteString(s.Sign.String())
	if s.Alternate {
		b.WriteByte('#')
	}
	if s.Zero {
		b.WriteByte('0')
	}
	if s.HasWidth {
		b.WriteString(strconv.Itoa(s.Width))
	}
	if s.Grouping {
		b.WriteByte(',')
	}
	if s.HasPrecision {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.Precision))
	}
	b.WriteString(s.Type)
	return b.String()
}
