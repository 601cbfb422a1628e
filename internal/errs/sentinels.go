// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrInvalidReference indicates a malformed entity identifier.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidParameter indicates malformed pagination, sort or payload input.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the acting subject does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a unique constraint violation in the store.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldError ties a sentinel to the request field that produced it.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// InvalidReference reports a malformed identifier in field.
func InvalidReference(field, value string) error {
	return &FieldError{Field: field, Value: value, Err: ErrInvalidReference}
}

// InvalidParameter reports a malformed value in field.
func InvalidParameter(field, value string) error {
	return &FieldError{Field: field, Value: value, Err: ErrInvalidParameter}
}

// NotFound wraps ErrNotFound with the entity kind and identifier.
func NotFound(kind string, id fmt.Stringer) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
