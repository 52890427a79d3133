package typedef

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/woodsbury/decimal128"

	"github.com/randalmurphal/formatparse/parser"
	"github.com/randalmurphal/formatparse/types"
)

// Kind selects how matched text becomes a value.
type Kind string

// Supported kinds.
const (
	KindString  Kind = "string"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindDecimal Kind = "decimal"
	KindBool    Kind = "bool"
	KindEnum    Kind = "enum"
)

// Case folds string values after matching.
type Case string

// Supported case foldings.
const (
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
)

// Definition declares one custom type.
type Definition struct {
	// Name is the type code used in templates, e.g. {:hexbyte}.
	Name string `json:"name" yaml:"name" toml:"name" jsonschema:"required,pattern=^[A-Za-z_]+$"`

	// Pattern is the regexp fragment matched for the field.
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern" jsonschema:"required,minLength=1"`

	// Kind defaults to string.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty" jsonschema:"enum=string,enum=int,enum=float,enum=decimal,enum=bool,enum=enum"`

	// Base is the radix of int types, 10 when unset.
	Base int `json:"base,omitempty" yaml:"base,omitempty" toml:"base,omitempty" jsonschema:"minimum=2,maximum=36"`

	// Case folds the matched text of string types.
	Case Case `json:"case,omitempty" yaml:"case,omitempty" toml:"case,omitempty" jsonschema:"enum=lower,enum=upper"`

	// Values maps matched text to the value of enum types.
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

// File is the top-level layout of a definition file.
type File struct {
	parser.Config `yaml:",inline"`

	Types []Definition `json:"types" yaml:"types" toml:"types"`
}

// Validate checks that the definition is complete and consistent.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if d.Pattern == "" {
		return fmt.Errorf("%w: pattern is required", ErrInvalidDefinition)
	}
	if _, err := regexp.Compile(d.Pattern); err != nil {
		return fmt.Errorf("%w: pattern: %w", ErrInvalidDefinition, err)
	}

	switch d.kind() {
	case KindString, KindInt, KindFloat, KindDecimal, KindBool, KindEnum:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidDefinition, d.Kind)
	}

	if d.Base != 0 {
		if d.kind() != KindInt {
			return fmt.Errorf("%w: base applies only to int types", ErrInvalidDefinition)
		}
		if d.Base < 2 || d.Base > 36 {
			return fmt.Errorf("%w: base %d out of range", ErrInvalidDefinition, d.Base)
		}
	}

	switch d.Case {
	case "":
	case CaseLower, CaseUpper:
		if d.kind() != KindString {
			return fmt.Errorf("%w: case applies only to string types", ErrInvalidDefinition)
		}
	default:
		return fmt.Errorf("%w: unknown case %q", ErrInvalidDefinition, d.Case)
	}

	if d.kind() == KindEnum && len(d.Values) == 0 {
		return fmt.Errorf("%w: enum types need values", ErrInvalidDefinition)
	}
	if d.kind() != KindEnum && len(d.Values) > 0 {
		return fmt.Errorf("%w: values apply only to enum types", ErrInvalidDefinition)
	}
	return nil
}

func (d *Definition) kind() Kind {
	if d.Kind == "" {
		return KindString
	}
	return d.Kind
}

// Converter builds the converter for a validated definition. caseSensitive
// controls how enum keys are looked up.
func (d *Definition) Converter(caseSensitive bool) *types.Converter {
	switch d.kind() {
	case KindInt:
		base := d.Base
		if base == 0 {
			base = 10
		}
		return types.WithPattern(d.Pattern, intParser(base), types.WithFormatter(intFormatter(base)))
	case KindFloat:
		return types.WithPattern(d.Pattern, parseFloat, types.WithFormatter(formatFloat))
	case KindDecimal:
		return types.WithPattern(d.Pattern, parseDecimal)
	case KindBool:
		return types.WithPattern(d.Pattern, parseBool, types.WithFormatter(formatBool))
	case KindEnum:
		values := make(map[string]any, len(d.Values))
		for k, v := range d.Values {
			values[k] = normalize(v)
		}
		return types.WithPattern(d.Pattern, enumParser(values, caseSensitive), types.WithFormatter(enumFormatter(values)))
	default:
		return types.WithPattern(d.Pattern, foldCase(d.Case))
	}
}

func foldCase(c Case) types.ConvertFunc {
	return func(s string) (any, error) {
		switch c {
		case CaseLower:
			return strings.ToLower(s), nil
		case CaseUpper:
			return strings.ToUpper(s), nil
		}
		return s, nil
	}
}

func intParser(base int) types.ConvertFunc {
	return func(s string) (any, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), base, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrConvert, err)
		}
		return int(n), nil
	}
}

func intFormatter(base int) types.FormatFunc {
	return func(v any) (string, error) {
		switch n := v.(type) {
		case int:
			return strconv.FormatInt(int64(n), base), nil
		case int64:
			return strconv.FormatInt(n, base), nil
		case int32:
			return strconv.FormatInt(int64(n), base), nil
		}
		return "", fmt.Errorf("%w: %T is not an integer", types.ErrFormat, v)
	}
}

func parseFloat(s string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrConvert, err)
	}
	return f, nil
}

func formatFloat(v any) (string, error) {
	switch f := v.(type) {
	case float64:
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case int:
		return strconv.Itoa(f), nil
	}
	return "", fmt.Errorf("%w: %T is not a float", types.ErrFormat, v)
}

func parseDecimal(s string) (any, error) {
	d, err := decimal128.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrConvert, err)
	}
	return d, nil
}

func parseBool(s string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return nil, fmt.Errorf("%w: %q is not a boolean", types.ErrConvert, s)
}

func formatBool(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("%w: %T is not a bool", types.ErrFormat, v)
	}
	return strconv.FormatBool(b), nil
}

func enumParser(values map[string]any, caseSensitive bool) types.ConvertFunc {
	keys := slices.Sorted(maps.Keys(values))
	return func(s string) (any, error) {
		if v, ok := values[s]; ok {
			return v, nil
		}
		if !caseSensitive {
			for _, k := range keys {
				if strings.EqualFold(k, s) {
					return values[k], nil
				}
			}
		}
		return nil, fmt.Errorf("%w: %q is not an enum value", types.ErrConvert, s)
	}
}

// enumFormatter renders the first key, in sorted order, whose value equals v.
func enumFormatter(values map[string]any) types.FormatFunc {
	keys := slices.Sorted(maps.Keys(values))
	return func(v any) (string, error) {
		v = normalize(v)
		for _, k := range keys {
			if reflect.DeepEqual(values[k], v) {
				return k, nil
			}
		}
		return "", fmt.Errorf("%w: %v has no enum text", types.ErrFormat, v)
	}
}

// normalize maps the integer types produced by the YAML, TOML and JSON
// decoders onto int so enum values compare equal to Go literals.
func normalize(v any) any {
	switch x := v.(type) {
	case int64:
		if x >= math.MinInt && x <= math.MaxInt {
			return int(x)
		}
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
	case int32:
		return int(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return normalize(n)
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	}
	return v
}
