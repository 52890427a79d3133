package typedef

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading type definitions.
var (
	// ErrUnsupportedFormat is returned for files that are not YAML, TOML or JSON.
	ErrUnsupportedFormat = errors.New("unsupported definition format")

	// ErrDecode is returned when a definition file is malformed or has unknown keys.
	ErrDecode = errors.New("decode type definitions")

	// ErrInvalidDefinition is returned when a type definition is incomplete or inconsistent.
	ErrInvalidDefinition = errors.New("invalid type definition")
)

// DefinitionError reports which entry of a definition file is invalid.
type DefinitionError struct {
	Index int
	Name  string
	Err   error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("types[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("type %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DefinitionError) Unwrap() error {
	return e.Err
}
