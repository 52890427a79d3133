package types

import "fmt"

func textConverter() *Converter {
	return &Converter{
		kind:     kindText,
		fragment: textFragment,
		convert:  func(text string, _ Spec) (any, error) { return text, nil },
	}
}

// maxRepeat is the largest count a bounded regexp repeat may carry. Longer
// widths and precisions become open repeats and are checked after matching.
const maxRepeat = 1000

// bounded returns the repeat for lo to hi occurrences.
func bounded(lo, hi int) string {
	switch {
	case hi <= maxRepeat:
		return fmt.Sprintf("{%d,%d}", lo, hi)
	case lo == 0:
		return "*"
	case lo == 1:
		return "+"
	default:
		return fmt.Sprintf("{%d,}", lo)
	}
}

// textFragment bounds a run of arbitrary text. A width covers the whole padded
// field; a precision covers the content only, which may be empty when
// alignment padding makes up the rest of the field.
func textFragment(spec Spec, _ bool) string {
	switch {
	case spec.HasWidth && spec.Width > 0:
		return `.` + bounded(1, spec.Width)
	case spec.HasPrecision && spec.Align != AlignNone:
		return `.` + bounded(0, spec.Precision)
	case spec.HasPrecision && spec.Precision > 0:
		return `.` + bounded(1, spec.Precision)
	case spec.HasPrecision:
		return ``
	default:
		return `.+?`
	}
}

func classConverter(class string) *Converter {
	return &Converter{
		kind: kindClass,
		fragment: func(spec Spec, lazy bool) string {
			return class + quantifier(spec, true, lazy)
		},
		convert: func(text string, _ Spec) (any, error) { return text, nil },
	}
}

// quantifier returns the repetition for a variable-length run. The width
// caps the run; for text classes a smaller precision caps it further. Lazy
// runs without a pinned width become non-greedy.
func quantifier(spec Spec, usePrecision, lazy bool) string {
	limit := 0
	if spec.HasWidth && spec.Width > 0 {
		limit = spec.Width
	}
	if usePrecision && spec.HasPrecision && spec.Precision > 0 && (limit == 0 || spec.Precision < limit) {
		limit = spec.Precision
	}

	q := "+"
	if limit > 0 {
		q = bounded(1, limit)
	}
	if lazy && !spec.HasWidth {
		q += "?"
	}
	return q
}
