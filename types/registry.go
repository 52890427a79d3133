package types

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode"
)

// Extra maps custom type names to converters for a single compile call.
type Extra map[string]*Converter

// Registry resolves type codes to converters. A Registry never changes after
// it is built; With returns a new one.
type Registry struct {
	builtin map[string]*Converter
	extra   map[string]*Converter
}

var builtins = sync.OnceValue(func() *Registry {
	return &Registry{builtin: builtinConverters()}
})

// Builtins returns the process-wide registry of built-in types.
func Builtins() *Registry {
	return builtins()
}

// With returns a registry that also resolves the given extra types.
// Extra names must be made of letters and underscores, and may not reuse a
// built-in code or a name already registered on r.
func (r *Registry) With(extra Extra) (*Registry, error) {
	if len(extra) == 0 {
		return r, nil
	}

	merged := make(map[string]*Converter, len(r.extra)+len(extra))
	maps.Copy(merged, r.extra)

	for _, name := range slices.Sorted(maps.Keys(extra)) {
		conv := extra[name]
		switch {
		case conv == nil:
			return nil, fmt.Errorf("%w: %q", ErrNilConverter, name)
		case !validTypeName(name):
			return nil, fmt.Errorf("%w: %q", ErrInvalidTypeName, name)
		}
		if _, ok := r.builtin[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrTypeCollision, name)
		}
		if _, ok := r.extra[name]; ok {
			return nil, fmt.Errorf("%w: %q already registered", ErrTypeCollision, name)
		}
		merged[name] = conv
	}

	return &Registry{builtin: r.builtin, extra: merged}, nil
}

// Lookup resolves a type code. Codes containing strftime directives (other
// than the bare percentage type "%") build a date/time converter on the fly.
func (r *Registry) Lookup(code string) (*Converter, error) {
	if conv, ok := r.extra[code]; ok {
		return conv, nil
	}
	if conv, ok := r.builtin[code]; ok {
		return conv, nil
	}
	if strings.Contains(code, "%") {
		return NewStrftime(code)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, code)
}

// Has reports whether code names a built-in or registered type.
func (r *Registry) Has(code string) bool {
	_, builtin := r.builtin[code]
	_, extra := r.extra[code]
	return builtin || extra
}

// Codes returns every built-in and registered type code, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.builtin)+len(r.extra))
	for code := range r.builtin {
		codes = append(codes, code)
	}
	for code := range r.extra {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

func validTypeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func builtinConverters() map[string]*Converter {
	text := textConverter()
	m := map[string]*Converter{
		"":  text,
		"s": text,
		"l": classConverter(`[A-Za-z]`),
		"w": classConverter(`\w`),
		"W": classConverter(`\W`),
		"S": classConverter(`\S`),
		"D": classConverter(`\D`),

		"d": integerConverter(),
		"n": separatedConverter(),
		"b": baseConverter(2),
		"o": baseConverter(8),
		"x": baseConverter(16),
		"f": floatConverter('f'),
		"e": floatConverter('e'),
		"g": floatConverter('g'),
		"%": percentConverter(),
		"F": decimalConverter(),
	}
	for code, grammar := range namedTimeGrammars() {
		m[code] = timeConverter(grammar)
	}
	return m
}
