package models

import (
	"errors"
	"fmt"
)

// Standard domain errors. Adapters and use cases wrap infrastructure errors
// with these so the HTTP layer can map each class to a stable status.
var (
	// ErrNoData signals the provider returned an empty series for the
	// requested symbol and window.
	ErrNoData = errors.New("no data for requested symbol and window")

	// ErrInconsistent guards the share/value math against a zero or
	// non-finite price that would otherwise leak Inf/NaN into a response.
	ErrInconsistent = errors.New("inconsistent market data")

	// ErrDuplicateUser is returned by user stores on a username collision.
	ErrDuplicateUser = errors.New("user already exists")
)

// ValidationError reports a request parameter that violates a constraint.
// It is never retried and maps to HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// RetrievalError wraps a provider gateway failure with its underlying cause.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("provider fetch failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }
