// Package apperr defines the error kinds surfaced by the ledger core.
//
// Every failure is classified as one of four kinds so that the transport
// layer can map it to a response without inspecting error strings:
//
//   - ErrValidation: malformed or missing required input.
//   - ErrTimestamp:  a date-time that cannot be parsed at minute precision.
//   - ErrNotFound:   a referenced trade does not exist.
//   - ErrStorage:    connection, constraint, or I/O failure in the store.
//
// Errors are built with fmt.Errorf and %w so callers branch with errors.Is
// while the full cause chain stays intact.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrTimestamp  = errors.New("invalid timestamp")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// Validationf builds a validation error with a formatted detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Timestamp classifies a parse failure for the given input value.
func Timestamp(value string, err error) error {
	return fmt.Errorf("%w: %q: %w", ErrTimestamp, value, err)
}

// NotFoundf builds a not-found error with a formatted detail message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Storage classifies a database error under the named operation.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
