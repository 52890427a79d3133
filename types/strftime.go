package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

type directive struct {
	group  string
	body   string
	format func(time.Time) string
}

func layoutFormat(layout string) func(time.Time) string {
	return func(t time.Time) string { return t.Format(layout) }
}

var directives = map[byte]directive{
	'a': {"weekday", dayNames, layoutFormat("Mon")},
	'A': {"weekday", dayNames, layoutFormat("Monday")},
	'b': {"monthname", monthNames, layoutFormat("Jan")},
	'h': {"monthname", monthNames, layoutFormat("Jan")},
	'B': {"monthname", monthNames, layoutFormat("January")},
	'd': {"day", `\d{1,2}`, layoutFormat("02")},
	'f': {"frac", `\d{1,6}`, func(t time.Time) string { return fmt.Sprintf("%06d", t.Nanosecond()/1000) }},
	'H': {"hour", `\d{1,2}`, layoutFormat("15")},
	'I': {"hour12", `\d{1,2}`, layoutFormat("03")},
	'j': {"yday", `\d{1,3}`, func(t time.Time) string { return fmt.Sprintf("%03d", t.YearDay()) }},
	'm': {"month", `\d{1,2}`, layoutFormat("01")},
	'M': {"minute", `\d{1,2}`, layoutFormat("04")},
	'p': {"ampm", ampmClass, layoutFormat("PM")},
	'S': {"second", `\d{1,2}`, layoutFormat("05")},
	'y': {"year2", `\d{2}`, layoutFormat("06")},
	'Y': {"year", `\d{4}`, layoutFormat("2006")},
	'z': {"tz", `Z|[-+]\d{2}:?\d{2}`, layoutFormat("-0700")},
	'Z': {"tzname", `[A-Za-z]{1,5}|[-+]\d{2}:\d{2}`, func(t time.Time) string {
		if _, ok := OffsetOf(t); !ok {
			return "UTC"
		}
		name, _ := t.Zone()
		return name
	}},
}

// composite directives expand to other directives.
var composites = map[byte]string{
	'c': "%a %b %d %H:%M:%S %Y",
	'x': "%m/%d/%y",
	'X': "%H:%M:%S",
}

type strftimePiece struct {
	literal string
	dir     *directive
}

// NewStrftime builds a converter for a type code made of strftime
// directives, such as "%Y-%m-%d". Whitespace in the layout matches any run
// of whitespace. Dates without %Y or %y fall in 1900.
func NewStrftime(code string) (*Converter, error) {
	pieces, err := splitStrftime(code)
	if err != nil {
		return nil, err
	}

	g, err := newTimeGrammar(func(group groupFunc) string {
		var b strings.Builder
		for _, p := range pieces {
			if p.dir != nil {
				b.WriteString(group(p.dir.group, p.dir.body))
				continue
			}
			if strings.TrimSpace(p.literal) == "" {
				b.WriteString(`\s+`)
				continue
			}
			b.WriteString(regexp.QuoteMeta(p.literal))
		}
		return b.String()
	}, func(t time.Time) string {
		var b strings.Builder
		for _, p := range pieces {
			if p.dir != nil {
				b.WriteString(p.dir.format(t))
				continue
			}
			b.WriteString(p.literal)
		}
		return b.String()
	})
	if err != nil {
		return nil, err
	}
	return timeConverter(g), nil
}

// splitStrftime splits a layout into literal runs and directives. Whitespace
// runs are kept as separate literal pieces.
func splitStrftime(code string) ([]strftimePiece, error) {
	var pieces []strftimePiece
	var lit strings.Builder
	space := false

	flush := func() {
		if lit.Len() > 0 {
			pieces = append(pieces, strftimePiece{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		if c != '%' {
			isSpace := unicode.IsSpace(rune(c))
			if isSpace != space {
				flush()
				space = isSpace
			}
			lit.WriteByte(c)
			continue
		}
		if i+1 >= len(code) {
			return nil, fmt.Errorf("%w: trailing %% in %q", ErrBadDirective, code)
		}
		i++
		verb := code[i]
		switch {
		case verb == '%':
			if space {
				flush()
				space = false
			}
			lit.WriteByte('%')
		case composites[verb] != "":
			flush()
			space = false
			sub, err := splitStrftime(composites[verb])
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, sub...)
		default:
			d, ok := directives[verb]
			if !ok {
				return nil, fmt.Errorf("%w: %%%c in %q", ErrBadDirective, verb, code)
			}
			flush()
			space = false
			pieces = append(pieces, strftimePiece{dir: &d})
		}
	}
	flush()
	return pieces, nil
}
