// Package apperrors defines the error taxonomy shared by all services.
// Handlers map these onto HTTP status codes; everything unrecognized is
// treated as a storage/internal failure.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no record exists with the given id
	ErrNotFound = errors.New("record not found")

	// ErrNotOwner indicates the caller is authenticated but does not own the record
	ErrNotOwner = errors.New("caller does not own this record")

	// ErrAuthentication indicates a missing or invalid credential
	ErrAuthentication = errors.New("authentication failed")

	// ErrStorage indicates an underlying persistence failure
	ErrStorage = errors.New("storage failure")
)

// ValidationError reports the first missing or malformed input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validation creates a ValidationError for the given field
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// Storage wraps an underlying persistence error so callers can match it
// with errors.Is(err, ErrStorage) without seeing driver internals
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
