package types

import (
	"strings"
	"unicode/utf8"
)

// Pad aligns text within the spec's width. def is the alignment used when the
// spec declares none. A '0' flag without explicit alignment or fill pads
// with zeros.
func Pad(text string, spec Spec, def Align) string {
	if !spec.HasWidth {
		return text
	}
	gap := spec.Width - utf8.RuneCountInString(text)
	if gap <= 0 {
		return text
	}

	align := spec.Align
	fill := string(spec.FillRune())
	if align == AlignNone {
		align = def
		if spec.Zero && !spec.HasFill() {
			fill = "0"
		}
	}

	switch align {
	case AlignRight:
		return strings.Repeat(fill, gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(fill, left) + text + strings.Repeat(fill, gap-left)
	default:
		return text + strings.Repeat(fill, gap)
	}
}
