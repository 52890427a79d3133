package typedef

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/formatparse/parser"
	"github.com/randalmurphal/formatparse/types"
)

// Format identifies the encoding of a definition file.
type Format string

// Supported encodings.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
}

// Set is a validated collection of custom types ready to compile with.
type Set struct {
	file  File
	types types.Extra
}

// NewSet validates f and builds its converters.
func NewSet(f File) (*Set, error) {
	extra := make(types.Extra, len(f.Types))
	for i := range f.Types {
		d := &f.Types[i]
		if err := d.Validate(); err != nil {
			return nil, &DefinitionError{Index: i, Name: d.Name, Err: err}
		}
		if _, dup := extra[d.Name]; dup {
			return nil, &DefinitionError{Index: i, Name: d.Name, Err: fmt.Errorf("%w: defined twice", ErrInvalidDefinition)}
		}
		extra[d.Name] = d.Converter(f.CaseSensitive)
	}

	// Surface name problems now rather than at the first Compile.
	if _, err := types.Builtins().With(extra); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return &Set{file: f, types: extra}, nil
}

// File returns the definitions the set was built from.
func (s *Set) File() File {
	return s.file
}

// Names returns the defined type names in file order.
func (s *Set) Names() []string {
	names := make([]string, len(s.file.Types))
	for i, d := range s.file.Types {
		names[i] = d.Name
	}
	return names
}

// Types returns the converters keyed by type name.
func (s *Set) Types() types.Extra {
	return maps.Clone(s.types)
}

// Options returns the compile options carrying the set's types and settings.
func (s *Set) Options() []parser.Option {
	return []parser.Option{
		parser.WithConfig(s.file.Config),
		parser.WithExtraTypes(s.types),
	}
}

// Compile compiles format with the set's types. opts are applied after the
// set's own options.
func (s *Set) Compile(format string, opts ...parser.Option) (*parser.Pattern, error) {
	return parser.Compile(format, append(s.Options(), opts...)...)
}

// Decode parses definitions encoded in the given format.
func Decode(data []byte, format Format) (*Set, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrDecode, undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return NewSet(f)
}

// Load reads a definition file, choosing the decoder by extension.
func Load(path string) (*Set, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read type definitions: %w", err)
	}
	set, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Schema returns the JSON Schema describing definition files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{}
	schema := r.Reflect(&File{})
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return out, nil
}
