package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for match-time failures.
var (
	// ErrWidthExceeded indicates a padded field is longer than its declared width.
	ErrWidthExceeded = errors.New("field wider than declared width")

	// ErrPrecisionExceeded indicates text content is longer than its declared precision.
	ErrPrecisionExceeded = errors.New("field longer than declared precision")
)

// ConversionError reports a field whose captured text could not be turned
// into a value.
type ConversionError struct {
	Field string // field source, e.g. "{age:d}"
	Type  string // type code
	Text  string // text after padding was stripped
	Err   error  // underlying error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s from %q: %v", e.Field, e.Text, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConversionError) Unwrap() error {
	return e.Err
}
