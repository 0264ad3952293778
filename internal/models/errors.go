package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrMissingField     = errors.New("field is required")
	ErrNotNumeric       = errors.New("value is not numeric")
	ErrNotInteger       = errors.New("value is not a whole number")
	ErrNotBoolean       = errors.New("value is not a boolean")
	ErrNotInEnumeration = errors.New("value is not one of the accepted options")
	ErrNegativeValue    = errors.New("value cannot be negative")
	ErrDivisionHazard   = errors.New("value must be greater than zero")
)

// InvalidProfileError names the first field that failed validation
type InvalidProfileError struct {
	Field string
	Err   error
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %v", e.Field, e.Err)
}

func (e *InvalidProfileError) Unwrap() error { return e.Err }

// Is matches ErrInvalidProfile in addition to the wrapped cause
func (e *InvalidProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}

// NewInvalidProfileError wraps cause for field
func NewInvalidProfileError(field string, cause error) *InvalidProfileError {
	return &InvalidProfileError{Field: field, Err: cause}
}
