// Package types is the type registry behind format-spec matching.
//
// Every field in a template names a type code after its format spec, such as
// the "d" in "{count:d}" or the "%Y-%m-%d" in "{when:%Y-%m-%d}". A Converter
// describes how that type looks in text (a regexp fragment bounded by the
// field's width and precision), how matched text becomes a Go value, and how a
// Go value is rendered back to text.
//
// # Built-in Types
//
//	""  s     any text                         string
//	l         ASCII letters                    string
//	w   W     word / non-word characters       string
//	S   D     non-whitespace / non-digits      string
//	d         integer, 0b/0o/0x prefixes       int (or *big.Int)
//	n         integer with , or . separators   int
//	b   o   x binary / octal / hex             int
//	f   e   g fixed / exponent / general float float64
//	F         fixed point decimal              decimal128.Decimal
//	%         percentage                       float64 (value / 100)
//	ti te tg ta tc th ts tt                    time.Time
//	%Y%m%d... strftime directives              time.Time
//
// # Custom Types
//
// WithPattern turns a plain conversion function into a Converter that can be
// passed as an extra type when compiling a pattern:
//
//	color := types.WithPattern(`red|green|blue`, func(s string) (any, error) {
//	    return strings.ToLower(s), nil
//	})
//	reg, err := types.Builtins().With(types.Extra{"Color": color})
//
// Extra types are scoped to the Registry returned by With; the built-in
// registry itself is never modified.
package types
