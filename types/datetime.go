package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	monthNames = `(?i:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t|tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	dayNames   = `(?i:mon(?:day)?|tue(?:s|sday)?|wed(?:nesday)?|thu(?:rs|rsday)?|fri(?:day)?|sat(?:urday)?|sun(?:day)?)`
	ampmClass  = `[AaPp][Mm]`
)

// FixedTzOffset is a constant offset from UTC read from text.
type FixedTzOffset struct {
	Minutes int
}

// String renders the offset as "+hh:mm".
func (o FixedTzOffset) String() string {
	sign := '+'
	m := o.Minutes
	if m < 0 {
		sign = '-'
		m = -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, m/60, m%60)
}

// Location returns a fixed time zone named after the offset.
func (o FixedTzOffset) Location() *time.Location {
	return time.FixedZone(o.String(), o.Minutes*60)
}

// OffsetOf reports the fixed offset attached to a parsed time. Times read
// without an offset are in UTC and report false.
func OffsetOf(t time.Time) (FixedTzOffset, bool) {
	if t.Location() == time.UTC {
		return FixedTzOffset{}, false
	}
	_, secs := t.Zone()
	return FixedTzOffset{Minutes: secs / 60}, true
}

type groupFunc func(name, body string) string

// timeGrammar is one date/time layout. The same layout is rendered twice:
// once with plain groups for embedding in a larger pattern, and once with
// named groups for picking the components apart after a match.
type timeGrammar struct {
	embed       string
	re          *regexp.Regexp
	render      func(time.Time) string
	defaultYear func() int
}

func newTimeGrammar(layout func(groupFunc) string, render func(time.Time) string) (*timeGrammar, error) {
	embed := layout(func(_, body string) string { return "(?:" + body + ")" })
	named := layout(func(name, body string) string { return "(?P<" + name + ">" + body + ")" })
	re, err := regexp.Compile(`^(?:` + named + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDirective, err)
	}
	return &timeGrammar{
		embed:       embed,
		re:          re,
		render:      render,
		defaultYear: func() int { return 1900 },
	}, nil
}

func mustTimeGrammar(layout func(groupFunc) string, render func(time.Time) string) *timeGrammar {
	g, err := newTimeGrammar(layout, render)
	if err != nil {
		panic(err)
	}
	return g
}

// parse reads text with the named-group form. A component may appear in more
// than one alternative; the first non-empty group of each name wins.
func (g *timeGrammar) parse(text string) (time.Time, error) {
	m := g.re.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a recognised date/time", ErrConvert, text)
	}
	parts := make(map[string]string, len(m))
	for i, name := range g.re.SubexpNames() {
		if name == "" || m[i] == "" {
			continue
		}
		if _, seen := parts[name]; !seen {
			parts[name] = m[i]
		}
	}
	return assemble(parts, g.defaultYear())
}

func timeConverter(g *timeGrammar) *Converter {
	return &Converter{
		kind:     kindTime,
		fragment: func(Spec, bool) string { return g.embed },
		convert: func(text string, _ Spec) (any, error) {
			return g.parse(text)
		},
		format: func(v any, _ Spec) (string, Align, error) {
			switch t := v.(type) {
			case time.Time:
				return g.render(t), AlignLeft, nil
			case *time.Time:
				if t != nil {
					return g.render(*t), AlignLeft, nil
				}
			}
			return "", AlignNone, fmt.Errorf("%w: %T as time", ErrFormat, v)
		},
	}
}

func namedTimeGrammars() map[string]*timeGrammar {
	clock := func(g groupFunc) string {
		return g("hour", `\d{1,2}`) + `:` + g("minute", `\d{2}`) +
			`(?::` + g("second", `\d{2}`) + `(?:[.,]` + g("frac", `\d{1,9}`) + `)?)?`
	}
	looseTail := func(g groupFunc) string {
		return `(?:\s+` + clock(g) +
			`(?:\s*` + g("ampm", ampmClass) + `)?` +
			`(?:\s*` + g("tz", `Z|[-+]\d{1,2}:?\d{2}`) + `)?)?`
	}

	syslog := mustTimeGrammar(func(g groupFunc) string {
		return g("monthname", monthNames) + `\s+` + g("day", `\d{1,2}`) + `\s+` + clock(g)
	}, func(t time.Time) string {
		return t.Format("Jan _2 15:04:05")
	})
	syslog.defaultYear = func() int { return time.Now().Year() }

	return map[string]*timeGrammar{
		"ti": mustTimeGrammar(func(g groupFunc) string {
			return g("year", `\d{4}`) + `-` + g("month", `\d{1,2}`) + `-` + g("day", `\d{1,2}`) +
				`(?:[T ]` + clock(g) + `(?:\s*` + g("tz", `Z|[-+]\d{2}(?::?\d{2})?`) + `)?)?`
		}, renderISO),

		"te": mustTimeGrammar(func(g groupFunc) string {
			return `(?:` + g("weekday", dayNames) + `,\s*)?` +
				g("day", `\d{1,2}`) + `\s+` + g("monthname", monthNames) + `\s+` + g("year", `\d{4}`) +
				`\s+` + clock(g) + `\s+` + g("tz", `[-+]\d{4}|(?i:UTC?|GMT|Z)`)
		}, func(t time.Time) string {
			return t.Format("Mon, 02 Jan 2006 15:04:05 -0700")
		}),

		"tg": mustTimeGrammar(func(g groupFunc) string {
			return g("day", `\d{1,2}`) + `[-/.\s]` +
				`(?:` + g("month", `\d{1,2}`) + `|` + g("monthname", monthNames) + `)` +
				`[-/.\s]` + g("year", `\d{4}`) + looseTail(g)
		}, func(t time.Time) string {
			return t.Format("02/01/2006 15:04:05") + offsetSuffix(t, " ")
		}),

		"ta": mustTimeGrammar(func(g groupFunc) string {
			return `(?:` + g("month", `\d{1,2}`) + `|` + g("monthname", monthNames) + `)` +
				`[-/.\s]` + g("day", `\d{1,2}`) + `[-/.\s]` + g("year", `\d{4}`) + looseTail(g)
		}, func(t time.Time) string {
			return t.Format("01/02/2006 15:04:05") + offsetSuffix(t, " ")
		}),

		"tc": mustTimeGrammar(func(g groupFunc) string {
			return g("weekday", dayNames) + `\s+` + g("monthname", monthNames) + `\s+` +
				g("day", `\d{1,2}`) + `\s+` + clock(g) + `\s+` + g("year", `\d{4}`)
		}, func(t time.Time) string {
			return t.Format(time.ANSIC)
		}),

		"th": mustTimeGrammar(func(g groupFunc) string {
			return g("day", `\d{1,2}`) + `/` + g("monthname", monthNames) + `/` + g("year", `\d{4}`) +
				`:` + g("hour", `\d{2}`) + `:` + g("minute", `\d{2}`) + `:` + g("second", `\d{2}`) +
				`\s+` + g("tz", `[-+]\d{4}`)
		}, func(t time.Time) string {
			return t.Format("02/Jan/2006:15:04:05 -0700")
		}),

		"ts": syslog,

		"tt": mustTimeGrammar(func(g groupFunc) string {
			return clock(g) + `(?:\s*` + g("ampm", ampmClass) + `)?` +
				`(?:\s*` + g("tz", `Z|[-+]\d{2}:?\d{2}`) + `)?`
		}, func(t time.Time) string {
			return t.Format("15:04:05") + fraction(t) + offsetSuffix(t, "")
		}),
	}
}

func renderISO(t time.Time) string {
	return t.Format("2006-01-02T15:04:05") + fraction(t) + offsetSuffix(t, "")
}

func fraction(t time.Time) string {
	if t.Nanosecond() == 0 {
		return ""
	}
	return strings.TrimRight(fmt.Sprintf(".%09d", t.Nanosecond()), "0")
}

func offsetSuffix(t time.Time, sep string) string {
	off, ok := OffsetOf(t)
	if !ok {
		return ""
	}
	return sep + off.String()
}

// assemble builds a time from named components. Times without any date
// component fall on 0000-01-01; dates without a year use defaultYear. Without
// an offset the result is in UTC.
func assemble(parts map[string]string, defaultYear int) (time.Time, error) {
	r := componentReader{parts: parts}

	year := defaultYear
	month, day := 1, 1
	hasDate := false
	for _, key := range []string{"year", "year2", "month", "monthname", "day", "yday"} {
		if parts[key] != "" {
			hasDate = true
		}
	}
	if !hasDate {
		year = 0
	}

	if y, ok := r.number("year", 0, 9999); ok {
		year = y
	}
	if y, ok := r.number("year2", 0, 99); ok {
		year = 2000 + y
		if y >= 69 {
			year = 1900 + y
		}
	}
	if m, ok := r.number("month", 1, 12); ok {
		month = m
	}
	if name := parts["monthname"]; name != "" {
		m, err := monthByName(name)
		if err != nil {
			return time.Time{}, err
		}
		month = m
	}
	if d, ok := r.number("day", 1, 31); ok {
		day = d
	}

	hour, _ := r.number("hour", 0, 23)
	if h, ok := r.number("hour12", 1, 12); ok {
		hour = h
	}
	minute, _ := r.number("minute", 0, 59)
	second, _ := r.number("second", 0, 61)
	if second > 59 {
		second = 59
	}

	if ampm := strings.ToLower(parts["ampm"]); ampm != "" && hour <= 12 {
		hour %= 12
		if ampm == "pm" {
			hour += 12
		}
	}

	nsec := 0
	if frac := parts["frac"]; frac != "" {
		digits := (frac + "000000000")[:9]
		nsec, _ = strconv.Atoi(digits)
	}

	loc := time.UTC
	tz := parts["tz"]
	if name := parts["tzname"]; tz == "" && name != "" && (name[0] == '+' || name[0] == '-') {
		tz = name
	}
	if tz != "" {
		off, err := parseOffset(tz)
		if err != nil {
			return time.Time{}, err
		}
		loc = off.Location()
	} else if name := strings.ToUpper(parts["tzname"]); name == "UTC" || name == "GMT" {
		loc = FixedTzOffset{}.Location()
	}

	yday, hasYday := r.number("yday", 1, 366)
	if r.err != nil {
		return time.Time{}, r.err
	}

	if hasYday && parts["month"] == "" && parts["monthname"] == "" && parts["day"] == "" {
		t := time.Date(year, time.January, 1, hour, minute, second, nsec, loc).AddDate(0, 0, yday-1)
		if t.Year() != year {
			return time.Time{}, fmt.Errorf("%w: day %d of %d", ErrOutOfRange, yday, year)
		}
		return t, nil
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nsec, loc)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrOutOfRange, year, month, day)
	}
	return t, nil
}

type componentReader struct {
	parts map[string]string
	err   error
}

func (r *componentReader) number(key string, lo, hi int) (int, bool) {
	s := r.parts[key]
	if s == "" || r.err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("%w: %s %q", ErrConvert, key, s)
		return 0, false
	}
	if n < lo || n > hi {
		r.err = fmt.Errorf("%w: %s %d", ErrOutOfRange, key, n)
		return 0, false
	}
	return n, true
}

func monthByName(name string) (int, error) {
	if len(name) >= 3 {
		prefix := strings.ToLower(name[:3])
		for m := time.January; m <= time.December; m++ {
			if strings.ToLower(m.String()[:3]) == prefix {
				return int(m), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: month %q", ErrConvert, name)
}

// parseOffset reads "Z", "UTC", "+hh", "+hhmm", "+h:mm" and "+hh:mm".
func parseOffset(s string) (FixedTzOffset, error) {
	switch strings.ToUpper(s) {
	case "Z", "UT", "UTC", "GMT":
		return FixedTzOffset{}, nil
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return FixedTzOffset{}, fmt.Errorf("%w: offset %q", ErrConvert, s)
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	rest := strings.ReplaceAll(s[1:], ":", "")

	var hh, mm string
	switch len(rest) {
	case 1, 2:
		hh = rest
	case 3:
		hh, mm = rest[:1], rest[1:]
	case 4:
		hh, mm = rest[:2], rest[2:]
	default:
		return FixedTzOffset{}, fmt.Errorf("%w: offset %q", ErrConvert, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return FixedTzOffset{}, fmt.Errorf("%w: offset %q", ErrConvert, s)
	}
	m := 0
	if mm != "" {
		if m, err = strconv.Atoi(mm); err != nil {
			return FixedTzOffset{}, fmt.Errorf("%w: offset %q", ErrConvert, s)
		}
	}
	if h > 23 || m > 59 {
		return FixedTzOffset{}, fmt.Errorf("%w: offset %q", ErrOutOfRange, s)
	}
	return FixedTzOffset{Minutes: sign * (h*60 + m)}, nil
}
