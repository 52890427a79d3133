package types

import "errors"

// Sentinel errors for registry and conversion operations.
var (
	// ErrUnknownType is returned when a type code is neither built in nor registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrTypeCollision is returned when an extra type reuses a built-in type code.
	ErrTypeCollision = errors.New("type name collides with a built-in type")

	// ErrInvalidTypeName is returned when an extra type name cannot be written in a template.
	ErrInvalidTypeName = errors.New("invalid type name")

	// ErrNilConverter is returned when an extra type maps to a nil converter.
	ErrNilConverter = errors.New("nil converter")

	// ErrBadDirective is returned for strftime directives the date parser does not support.
	ErrBadDirective = errors.New("unsupported date/time directive")

	// ErrConvert is returned when matched text cannot be turned into a value.
	ErrConvert = errors.New("conversion failed")

	// ErrOutOfRange is returned when a date/time component is outside its valid range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrFormat is returned when a value cannot be rendered for a type.
	ErrFormat = errors.New("cannot format value")
)
