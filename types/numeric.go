package types

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/woodsbury/decimal128"
)

const (
	signClass    = `[-+ ]?`
	specialFloat = `(?i:inf(?:inity)?|nan)`
)

var basePrefixes = map[int]string{2: "0b", 8: "0o", 16: "0x"}

var baseDigits = map[int]string{
	2:  `[01]`,
	8:  `[0-7]`,
	10: `\d`,
	16: `[0-9a-fA-F]`,
}

func integerConverter() *Converter {
	return &Converter{
		kind: kindNumber,
		fragment: func(spec Spec, lazy bool) string {
			q := quantifier(spec, false, lazy)
			decimal := `\d` + q
			if spec.Grouping {
				decimal = `\d{1,3}(?:,\d{3})+|` + decimal
			}
			return signClass + `(?:0[bB][01]` + q + `|0[oO][0-7]` + q + `|0[xX][0-9a-fA-F]` + q + `|` + decimal + `)`
		},
		convert: func(text string, _ Spec) (any, error) {
			return parseInteger(strings.ReplaceAll(text, ",", ""), 10)
		},
		format: func(v any, spec Spec) (string, Align, error) {
			return formatInteger(v, spec, 10)
		},
	}
}

// separatedConverter handles "n": integers with , or . thousands separators.
func separatedConverter() *Converter {
	return &Converter{
		kind: kindNumber,
		fragment: func(spec Spec, lazy bool) string {
			return signClass + `(?:\d{1,3}(?:[,.]\d{3})+|\d` + quantifier(spec, false, lazy) + `)`
		},
		convert: func(text string, _ Spec) (any, error) {
			return parseInteger(strings.NewReplacer(",", "", ".", "").Replace(text), 10)
		},
		format: func(v any, spec Spec) (string, Align, error) {
			spec.Grouping = true
			return formatInteger(v, spec, 10)
		},
	}
}

func baseConverter(base int) *Converter {
	prefix := basePrefixes[base]
	return &Converter{
		kind: kindNumber,
		fragment: func(spec Spec, lazy bool) string {
			p := fmt.Sprintf(`(?:0[%c%c])?`, prefix[1], prefix[1]-'a'+'A')
			return signClass + p + baseDigits[base] + quantifier(spec, false, lazy)
		},
		convert: func(text string, _ Spec) (any, error) {
			return parseInteger(text, base)
		},
		format: func(v any, spec Spec) (string, Align, error) {
			return formatInteger(v, spec, base)
		},
	}
}

// parseInteger parses an optionally signed integer. A 0b/0o/0x prefix selects
// the base when base is 10, and is skipped when it names base itself.
// Values that overflow int are returned as *big.Int.
func parseInteger(text string, base int) (any, error) {
	s := strings.TrimSpace(text)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	s, base = stripPrefix(s, base)
	if s == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrConvert, text)
	}

	v, err := strconv.ParseInt(sign+s, base, strconv.IntSize)
	if err == nil {
		return int(v), nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %q is not a base-%d integer", ErrConvert, text, base)
	}
	n, ok := new(big.Int).SetString(sign+s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base-%d integer", ErrConvert, text, base)
	}
	return n, nil
}

func stripPrefix(s string, base int) (string, int) {
	if len(s) < 2 || s[0] != '0' {
		return s, base
	}
	var prefixed int
	switch s[1] {
	case 'b', 'B':
		prefixed = 2
	case 'o', 'O':
		prefixed = 8
	case 'x', 'X':
		prefixed = 16
	default:
		return s, base
	}
	if base == 10 || base == prefixed {
		return s[2:], prefixed
	}
	return s, base
}

func floatConverter(verb byte) *Converter {
	return &Converter{
		kind: kindNumber,
		fragment: func(spec Spec, _ bool) string {
			return floatFragment(verb, spec)
		},
		convert: func(text string, spec Spec) (any, error) {
			if verb == 'f' {
				if err := checkFraction(text, spec); err != nil {
					return nil, err
				}
			}
			return parseFloat(text)
		},
		format: func(v any, spec Spec) (string, Align, error) {
			f, ok := toFloat(v)
			if !ok {
				return "", AlignNone, fmt.Errorf("%w: %T as float", ErrFormat, v)
			}
			return formatFloat(f, spec, verb, ""), AlignRight, nil
		},
	}
}

func floatFragment(verb byte, spec Spec) string {
	whole := `\d+`
	if spec.Grouping {
		whole = `\d{1,3}(?:,\d{3})*`
	}

	var num string
	switch verb {
	case 'f':
		switch {
		case spec.HasPrecision && spec.Precision == 0:
			num = whole + `\.?`
		case spec.HasPrecision:
			num = whole + `\.\d` + bounded(1, spec.Precision)
		default:
			num = `(?:` + whole + `)?\.\d+`
		}
	case 'e':
		num = `(?:` + whole + `(?:\.\d*)?|\.\d+)[eE][-+]?\d+`
	default:
		num = `(?:` + whole + `(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`
	}
	return signClass + `(?:` + num + `|` + specialFloat + `)`
}

// checkFraction rejects fixed-point text with more fractional digits than
// the precision allows.
func checkFraction(text string, spec Spec) error {
	if !spec.HasPrecision {
		return nil
	}
	_, frac, ok := strings.Cut(text, ".")
	if !ok {
		return nil
	}
	if n := len(strings.TrimSpace(frac)); n > spec.Precision {
		return fmt.Errorf("%w: %d fractional digits exceed precision %d", ErrConvert, n, spec.Precision)
	}
	return nil
}

func parseFloat(text string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrConvert, text)
	}
	return f, nil
}

func percentConverter() *Converter {
	return &Converter{
		kind: kindNumber,
		fragment: func(spec Spec, _ bool) string {
			whole := `\d+`
			if spec.Grouping {
				whole = `\d{1,3}(?:,\d{3})*`
			}
			return signClass + `(?:` + whole + `(?:\.\d*)?|\.\d+)%`
		},
		convert: func(text string, _ Spec) (any, error) {
			f, err := parseFloat(strings.TrimSuffix(strings.TrimSpace(text), "%"))
			if err != nil {
				return nil, err
			}
			return f / 100, nil
		},
		format: func(v any, spec Spec) (string, Align, error) {
			f, ok := toFloat(v)
			if !ok {
				return "", AlignNone, fmt.Errorf("%w: %T as percentage", ErrFormat, v)
			}
			return formatFloat(f*100, spec, 'f', "%"), AlignRight, nil
		},
	}
}

func decimalConverter() *Converter {
	return &Converter{
		kind: kindNumber,
		fragment: func(spec Spec, _ bool) string {
			return floatFragment('f', spec)
		},
		convert: func(text string, spec Spec) (any, error) {
			if err := checkFraction(text, spec); err != nil {
				return nil, err
			}
			s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
			d, err := decimal128.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a decimal: %w", ErrConvert, text, err)
			}
			return d, nil
		},
		format: formatDecimal,
	}
}

func formatDecimal(v any, spec Spec) (string, Align, error) {
	var d decimal128.Decimal
	switch x := v.(type) {
	case decimal128.Decimal:
		d = x
	case *decimal128.Decimal:
		d = *x
	case string:
		parsed, err := decimal128.Parse(x)
		if err != nil {
			return "", AlignNone, fmt.Errorf("%w: %q as decimal", ErrFormat, x)
		}
		d = parsed
	default:
		f, ok := toFloat(v)
		if !ok {
			return "", AlignNone, fmt.Errorf("%w: %T as decimal", ErrFormat, v)
		}
		d = decimal128.FromFloat64(f)
	}

	neg := d.Signbit() && !d.IsNaN()
	if neg {
		d = d.Neg()
	}

	var body string
	switch {
	case d.IsNaN():
		body = "nan"
	case d.IsInf(0):
		body = "inf"
	default:
		prec := 6
		if spec.HasPrecision {
			prec = spec.Precision
		}
		body = decimal128.Format(d, 'f', prec)
		if spec.Grouping {
			body = groupNumber(body)
		}
	}
	return signed(neg, body, "", spec), AlignRight, nil
}

func formatInteger(v any, spec Spec, base int) (string, Align, error) {
	n, ok := toBigInt(v)
	if !ok {
		return "", AlignNone, fmt.Errorf("%w: %T as integer", ErrFormat, v)
	}
	digits := new(big.Int).Abs(n).Text(base)
	if spec.Grouping && base == 10 {
		digits = groupDigits(digits)
	}
	prefix := ""
	if spec.Alternate {
		prefix = basePrefixes[base]
	}
	return signed(n.Sign() < 0, digits, prefix, spec), AlignRight, nil
}

func formatFloat(f float64, spec Spec, verb byte, suffix string) string {
	neg := math.Signbit(f) && !math.IsNaN(f)
	a := math.Abs(f)

	var body string
	switch {
	case math.IsNaN(f):
		body = "nan"
	case math.IsInf(a, 0):
		body = "inf"
	default:
		prec := 6
		if spec.HasPrecision {
			prec = spec.Precision
		}
		body = strconv.FormatFloat(a, verb, prec, 64)
		if spec.Alternate && verb == 'f' && prec == 0 {
			body += "."
		}
		if spec.Grouping {
			body = groupNumber(body)
		}
	}
	return signed(neg, body+suffix, "", spec)
}

// signed prepends the sign and base prefix, and zero-fills up to the width
// when the spec asks for '0' without an explicit alignment.
func signed(neg bool, body, prefix string, spec Spec) string {
	sign := ""
	switch {
	case neg:
		sign = "-"
	case spec.Sign == SignPlus:
		sign = "+"
	case spec.Sign == SignSpace:
		sign = " "
	}
	head := sign + prefix
	if spec.Zero && spec.Align == AlignNone && !spec.HasFill() && spec.HasWidth {
		if gap := spec.Width - len(head) - len(body); gap > 0 {
			body = strings.Repeat("0", gap) + body
		}
	}
	return head + body
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	var b strings.Builder
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupNumber groups the integer part of a formatted number.
func groupNumber(body string) string {
	end := strings.IndexAny(body, ".eE")
	if end < 0 {
		end = len(body)
	}
	return groupDigits(body[:end]) + body[end:]
}

func toBigInt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return x, true
	case big.Int:
		return &x, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	if d, ok := v.(decimal128.Decimal); ok {
		return d.Float64(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
