package roundtrip

import (
	"errors"
	"fmt"
)

// Sentinel errors for round-trip operations.
var (
	// ErrNoMatch is returned when the input text does not match the pattern.
	ErrNoMatch = errors.New("text does not match pattern")

	// ErrRender is returned when parsed values cannot be rendered.
	ErrRender = errors.New("render failed")

	// ErrNotRoundTripSafe is returned when re-parsing rendered text gives different values.
	ErrNotRoundTripSafe = errors.New("values do not survive a round trip")
)

// MismatchError describes how re-parsed values differ from the originals.
type MismatchError struct {
	Rendered string // text produced from the first parse
	Diff     string // cmp.Diff of the two value sets, or why the text failed to parse
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: rendered %q\n%s", ErrNotRoundTripSafe, e.Rendered, e.Diff)
}

// Unwrap returns ErrNotRoundTripSafe for errors.Is support.
func (e *MismatchError) Unwrap() error {
	return ErrNotRoundTripSafe
}
