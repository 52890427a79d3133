package types

import (
	"math"
	"math/big"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodsbury/decimal128"
)

func fragmentMatches(t *testing.T, code string, spec Spec, text string) bool {
	t.Helper()
	conv, err := Builtins().Lookup(code)
	require.NoError(t, err)
	re := regexp.MustCompile(`^(?:` + conv.Fragment(spec, false) + `)$`)
	return re.MatchString(text)
}

func TestFragments(t *testing.T) {
	tests := []struct {
		code  string
		spec  Spec
		text  string
		match bool
	}{
		{"d", Spec{}, "42", true},
		{"d", Spec{}, "-42", true},
		{"d", Spec{}, "+7", true},
		{"d", Spec{}, "0x1f", true},
		{"d", Spec{}, "0b101", true},
		{"d", Spec{}, "4.2", false},
		{"d", Spec{}, "1,234", false},
		{"d", Spec{Grouping: true}, "1,234", true},
		{"d", Spec{Width: 2, HasWidth: true}, "123", false},
		{"n", Spec{}, "1.234.567", true},
		{"n", Spec{}, "1,234", true},
		{"b", Spec{}, "0b1101", true},
		{"b", Spec{}, "102", false},
		{"o", Spec{}, "0o17", true},
		{"x", Spec{}, "0xFF", true},
		{"x", Spec{}, "beef", true},
		{"f", Spec{}, "3.14", true},
		{"f", Spec{}, ".5", true},
		{"f", Spec{}, "-inf", true},
		{"f", Spec{}, "3", false},
		{"f", Spec{Precision: 2, HasPrecision: true}, "3.14", true},
		{"f", Spec{Precision: 2, HasPrecision: true}, "3.141", false},
		{"f", Spec{Precision: 2, HasPrecision: true}, "3.1", true},
		{"f", Spec{Precision: 1500, HasPrecision: true}, "3.25", true},
		{"e", Spec{}, "1e10", true},
		{"e", Spec{}, "1.5E-3", true},
		{"e", Spec{}, "1.5", false},
		{"g", Spec{}, "3", true},
		{"g", Spec{}, "3.5", true},
		{"g", Spec{}, "1e5", true},
		{"g", Spec{}, "NaN", true},
		{"%", Spec{}, "25%", true},
		{"%", Spec{}, "12.5%", true},
		{"%", Spec{}, "12.5", false},
		{"F", Spec{}, "3.14", true},
		{"l", Spec{}, "abc", true},
		{"l", Spec{}, "ab1", false},
		{"w", Spec{}, "ab_1", true},
		{"W", Spec{}, "!?", true},
		{"S", Spec{}, "a b", false},
		{"D", Spec{}, "abc", true},
		{"D", Spec{}, "a1", false},
		{"s", Spec{}, "any text", true},
		{"s", Spec{Width: 3, HasWidth: true}, "abcd", false},
		{"s", Spec{Width: 1001, HasWidth: true}, "abcd", true},
		{"d", Spec{Width: 5000, HasWidth: true}, "12345678", true},
		{"s", Spec{Precision: 0, HasPrecision: true}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.match, fragmentMatches(t, tt.code, tt.spec, tt.text))
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		text string
		base int
		want any
	}{
		{"42", 10, 42},
		{"-42", 10, -42},
		{"+7", 10, 7},
		{"0x1F", 10, 31},
		{"-0b101", 10, -5},
		{"0o17", 10, 15},
		{"1F", 16, 31},
		{"0x1F", 16, 31},
		{"101", 2, 5},
		{"0b101", 2, 5},
		{"17", 8, 15},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseInteger(tt.text, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseInteger("-", 10)
	assert.ErrorIs(t, err, ErrConvert)
}

func TestParseInteger_Big(t *testing.T) {
	got, err := parseInteger("123456789012345678901234567890", 10)
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	n, ok := got.(*big.Int)
	require.True(t, ok)
	assert.Zero(t, want.Cmp(n))
}

func TestConvert_Numbers(t *testing.T) {
	reg := Builtins()

	tests := []struct {
		code string
		text string
		want any
	}{
		{"d", "1,234", 1234},
		{"n", "1.234.567", 1234567},
		{"f", "3.5", 3.5},
		{"e", "1.5e3", 1500.0},
		{"g", "-2", -2.0},
		{"%", "25%", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			conv, err := reg.Lookup(tt.code)
			require.NoError(t, err)
			got, err := conv.Convert(tt.text, Spec{Type: tt.code})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	conv, err := reg.Lookup("f")
	require.NoError(t, err)
	got, err := conv.Convert("-inf", Spec{})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.(float64), -1))
}

func TestConvert_Decimal(t *testing.T) {
	conv, err := Builtins().Lookup("F")
	require.NoError(t, err)

	got, err := conv.Convert("3.14", Spec{})
	require.NoError(t, err)

	want, err := decimal128.Parse("3.14")
	require.NoError(t, err)
	d, ok := got.(decimal128.Decimal)
	require.True(t, ok)
	assert.True(t, want.Equal(d))

	out, err := conv.Format(d, Spec{Precision: 2, HasPrecision: true})
	require.NoError(t, err)
	assert.Equal(t, "3.14", out)
}

func TestFormat_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		value any
		spec  Spec
		want  string
	}{
		{"plain int", "d", 42, Spec{}, "42"},
		{"width", "d", 42, Spec{Width: 5, HasWidth: true}, "   42"},
		{"left", "d", 42, Spec{Align: AlignLeft, Width: 5, HasWidth: true}, "42   "},
		{"grouping", "d", 1234567, Spec{Grouping: true}, "1,234,567"},
		{"plus sign", "d", 5, Spec{Sign: SignPlus}, "+5"},
		{"space sign", "d", 5, Spec{Sign: SignSpace}, " 5"},
		{"zero pad", "d", -42, Spec{Zero: true, Width: 5, HasWidth: true}, "-0042"},
		{"fill", "d", 7, Spec{Fill: '*', Align: AlignCenter, Width: 5, HasWidth: true}, "**7**"},
		{"int64", "d", int64(-3), Spec{}, "-3"},
		{"uint8", "d", uint8(200), Spec{}, "200"},
		{"hex", "x", 255, Spec{}, "ff"},
		{"hex alternate", "x", 255, Spec{Alternate: true}, "0xff"},
		{"binary", "b", 5, Spec{}, "101"},
		{"octal alternate", "o", 8, Spec{Alternate: true}, "0o10"},
		{"separated", "n", 1234, Spec{}, "1,234"},
		{"float default", "f", 3.14159, Spec{}, "3.141590"},
		{"float precision", "f", 3.14159, Spec{Precision: 2, HasPrecision: true}, "3.14"},
		{"float from int", "f", 2, Spec{Precision: 1, HasPrecision: true}, "2.0"},
		{"float grouping", "f", 1234.5, Spec{Grouping: true, Precision: 1, HasPrecision: true}, "1,234.5"},
		{"exponent", "e", 1500.0, Spec{Precision: 2, HasPrecision: true}, "1.50e+03"},
		{"general", "g", 3.14159, Spec{}, "3.14159"},
		{"nan", "f", math.NaN(), Spec{}, "nan"},
		{"negative inf", "f", math.Inf(-1), Spec{}, "-inf"},
		{"percent", "%", 0.25, Spec{Precision: 1, HasPrecision: true}, "25.0%"},
		{"string", "s", "ab", Spec{Fill: '.', Align: AlignRight, Width: 5, HasWidth: true}, "...ab"},
		{"string center", "s", "ab", Spec{Fill: '*', Align: AlignCenter, Width: 7, HasWidth: true}, "**ab***"},
		{"string default left", "s", "ab", Spec{Width: 4, HasWidth: true}, "ab  "},
		{"string precision", "s", "abcdef", Spec{Precision: 3, HasPrecision: true}, "abc"},
		{"string zero", "s", "ab", Spec{Zero: true, Width: 5, HasWidth: true}, "ab000"},
	}

	reg := Builtins()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := reg.Lookup(tt.code)
			require.NoError(t, err)
			got, err := conv.Format(tt.value, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_WrongType(t *testing.T) {
	conv, err := Builtins().Lookup("d")
	require.NoError(t, err)

	_, err = conv.Format("forty-two", Spec{})
	assert.ErrorIs(t, err, ErrFormat)

	conv, err = Builtins().Lookup("f")
	require.NoError(t, err)
	_, err = conv.Format(struct{}{}, Spec{})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1", groupDigits("1"))
	assert.Equal(t, "123", groupDigits("123"))
	assert.Equal(t, "1,234", groupDigits("1234"))
	assert.Equal(t, "123,456", groupDigits("123456"))
	assert.Equal(t, "1,234.5678", groupNumber("1234.5678"))
}

func TestBounded(t *testing.T) {
	tests := []struct {
		lo, hi int
		want   string
	}{
		{1, 5, "{1,5}"},
		{0, 1000, "{0,1000}"},
		{0, 1001, "*"},
		{1, 2000, "+"},
		{3, 2000, "{3,}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bounded(tt.lo, tt.hi))
	}
}

func TestFragment_Lazy(t *testing.T) {
	conv, err := Builtins().Lookup("l")
	require.NoError(t, err)

	assert.Equal(t, `[A-Za-z]+`, conv.Fragment(Spec{}, false))
	assert.Equal(t, `[A-Za-z]+?`, conv.Fragment(Spec{}, true))
	// a pinned width keeps the run greedy
	assert.Equal(t, `[A-Za-z]{1,4}`, conv.Fragment(Spec{Width: 4, HasWidth: true}, true))
}

func TestFloatPrecisionCheck(t *testing.T) {
	conv, err := Builtins().Lookup("f")
	require.NoError(t, err)

	spec := Spec{Precision: 2, HasPrecision: true, Type: "f"}
	v, err := conv.Convert("3.14", spec)
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)

	_, err = conv.Convert("3.141", spec)
	assert.ErrorIs(t, err, ErrConvert)
}
