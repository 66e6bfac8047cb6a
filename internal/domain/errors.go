package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown account).
// Handlers should map this to HTTP 400 with the field messages as the body.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by repo functions when a write violates a
// uniqueness constraint.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when credentials or tokens do not check out.
// It never says which part was wrong.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError collects per-field messages for a rejected payload.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add records msg against field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no field messages were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns e when it holds messages and nil otherwise, so callers can
// write `return v.OrNil()` at the end of a validator.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Is lets errors.Is(err, ErrValidation) match any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Messages used for field errors. Kept in one place so handler tests and
// services agree on the wording.
const (
	MsgRequired      = "This field is required."
	MsgUsernameTaken = "A user with that username already exists."
	MsgInvalidEmail  = "Enter a valid email address."

	MsgInvalidInteger  = "A valid integer is required."
	MsgInvalidPK       = "Incorrect type. Expected pk value."
	MsgInvalidDatetime = "Datetime has wrong format. Use RFC 3339, e.g. 2025-06-01T09:30:00+09:00."
)
