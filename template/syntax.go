package template

import (
	"strconv"
	"strings"

	"github.com/randalmurphal/formatparse/types"
)

// token is one scanned piece of a template: a literal run with escapes
// resolved, or the raw source of a field.
type token struct {
	literal string
	field   string // "{...}" including braces; empty for literals
	offset  int
}

// body returns the text between the field's braces.
func (t token) body() string {
	return t.field[1 : len(t.field)-1]
}

// scan splits text into literal and field tokens. "{{" and "}}" are literal
// braces; a lone '}' outside a field is kept as a literal.
func scan(text string) ([]token, error) {
	var tokens []token
	var lit strings.Builder
	litStart := 0

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{literal: lit.String(), offset: litStart})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '{' && strings.HasPrefix(text[i:], "{{"):
			lit.WriteByte('{')
			i += 2
		case c == '}' && strings.HasPrefix(text[i:], "}}"):
			lit.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, &CompileError{Template: text, Offset: i, Field: text[i:], Err: ErrUnterminatedField}
			}
			flush()
			tokens = append(tokens, token{field: text[i : i+end+2], offset: i})
			i += end + 2
			litStart = i
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return tokens, nil
}

// splitField separates the identity from the spec at the first ':'.
func splitField(body string) (identity, spec string) {
	identity, spec, _ = strings.Cut(body, ":")
	return identity, spec
}

func parseIdentity(s string, nextAuto *int) (Identity, error) {
	switch {
	case s == "":
		id := Identity{Kind: Auto, Index: *nextAuto}
		*nextAuto++
		return id, nil
	case allDigits(s):
		n, err := strconv.Atoi(s)
		if err != nil {
			return Identity{}, ErrInvalidName
		}
		return Identity{Kind: Index, Index: n}, nil
	case validName(s):
		return Identity{Kind: Name, Name: s}, nil
	default:
		return Identity{}, ErrInvalidName
	}
}

const specChars = "<>^+- #0123456789,."

func alignOf(r rune) types.Align {
	switch r {
	case '<':
		return types.AlignLeft
	case '>':
		return types.AlignRight
	case '^':
		return types.AlignCenter
	default:
		return types.AlignNone
	}
}

// parseSpec reads [[fill]align][sign][#][0][width][,][.precision][type].
func parseSpec(s string) (types.Spec, error) {
	var spec types.Spec
	r := []rune(s)
	i := 0

	switch {
	case len(r) >= 2 && alignOf(r[1]) != types.AlignNone:
		spec.Fill = r[0]
		spec.Align = alignOf(r[1])
		i = 2
	case len(r) >= 1 && alignOf(r[0]) != types.AlignNone:
		spec.Align = alignOf(r[0])
		i = 1
	case len(r) >= 2 && !strings.ContainsRune(specChars, r[0]) && r[0] != '%' &&
		strings.ContainsRune(specChars[3:], r[1]):
		return spec, ErrStrayFill
	}

	if i < len(r) {
		switch r[i] {
		case '+':
			spec.Sign = types.SignPlus
			i++
		case '-':
			spec.Sign = types.SignMinus
			i++
		case ' ':
			spec.Sign = types.SignSpace
			i++
		}
	}
	if i < len(r) && r[i] == '#' {
		spec.Alternate = true
		i++
	}
	if i < len(r) && r[i] == '0' {
		spec.Zero = true
		i++
	}

	start := i
	for i < len(r) && isDigit(r[i]) {
		i++
	}
	if i > start {
		w, err := strconv.Atoi(string(r[start:i]))
		if err != nil {
			return spec, ErrMalformedSpec
		}
		spec.Width, spec.HasWidth = w, w > 0
	}

	if i < len(r) && r[i] == ',' {
		spec.Grouping = true
		i++
	}

	if i < len(r) && r[i] == '.' {
		i++
		start = i
		for i < len(r) && isDigit(r[i]) {
			i++
		}
		if i == start {
			return spec, ErrMalformedSpec
		}
		p, err := strconv.Atoi(string(r[start:i]))
		if err != nil {
			return spec, ErrMalformedSpec
		}
		spec.Precision, spec.HasPrecision = p, true
	}

	spec.Type = string(r[i:])
	if !strings.Contains(spec.Type, "%") && strings.ContainsAny(spec.Type, "0123456789.,") {
		return spec, ErrMalformedSpec
	}
	return spec, nil
}
