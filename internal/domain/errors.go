package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no book exists for the requested id.
var ErrNotFound = errors.New("book not found")

// ValidationError reports malformed or incomplete caller input. It maps to
// a 400 at the HTTP boundary and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError wraps a storage failure so a failed query is never mistaken
// for an empty result. It maps to a 500 at the HTTP boundary.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }
