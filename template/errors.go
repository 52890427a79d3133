package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template compilation and rendering.
var (
	// ErrUnknownType is returned when a field names a type the registry cannot resolve.
	ErrUnknownType = errors.New("unknown type")

	// ErrRepeatedName is returned when a field name is declared twice.
	ErrRepeatedName = errors.New("repeated field name")

	// ErrMalformedSpec is returned when a format spec does not follow the spec grammar.
	ErrMalformedSpec = errors.New("malformed format spec")

	// ErrStrayFill is returned when a fill character is written without an align token.
	ErrStrayFill = errors.New("fill character without alignment")

	// ErrUnterminatedField is returned when a '{' has no closing '}'.
	ErrUnterminatedField = errors.New("unterminated field")

	// ErrInvalidName is returned when a field identity is not a valid name or index.
	ErrInvalidName = errors.New("invalid field name")

	// ErrMissingValue is returned by Render when no value is supplied for a field.
	ErrMissingValue = errors.New("missing value for field")

	// ErrRender is returned when a value cannot be formatted for its field.
	ErrRender = errors.New("render failed")
)

// CompileError locates a compile failure within its template.
type CompileError struct {
	Template string // template text
	Offset   int    // byte offset of the offending field
	Field    string // field source, including braces
	Err      error  // underlying error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("compile %q: field %s at offset %d: %v", e.Template, e.Field, e.Offset, e.Err)
	}
	return fmt.Sprintf("compile %q at offset %d: %v", e.Template, e.Offset, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// RepeatedNameError reports a field name declared more than once.
type RepeatedNameError struct {
	Name   string
	First  int // byte offset of the first declaration
	Second int // byte offset of the repeat
}

// Error implements the error interface.
func (e *RepeatedNameError) Error() string {
	return fmt.Sprintf("%v: %q declared at offsets %d and %d", ErrRepeatedName, e.Name, e.First, e.Second)
}

// Is matches ErrRepeatedName.
func (e *RepeatedNameError) Is(target error) bool {
	return target == ErrRepeatedName
}
