package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrNotFound signals that a referenced id does not resolve through
	// the store. Wrapped with the entity name at the point of lookup.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals malformed or incomplete input.
	ErrValidation = errors.New("validation error")

	// ErrConflict signals a uniqueness violation (e.g. duplicate email).
	ErrConflict = errors.New("conflict")

	// ErrUnauthenticated signals a missing or failed credential check.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden signals that the caller lacks creator privilege for
	// the requested operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState signals that a loaded entity violates a core
	// invariant (e.g. a persisted todo with no owner). This is an
	// internal-consistency failure, not a user error.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidRelation signals that two loaded entities that must be
	// associated are not (e.g. a manager that is not in the given todo).
	ErrInvalidRelation = errors.New("invalid relation")

	// ErrUnavailable signals a failing downstream dependency.
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the standard per-field message for missing required fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
