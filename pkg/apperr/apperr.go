// Package apperr defines the domain error taxonomy shared by services and
// controllers. Services return these; controllers map them to HTTP statuses
// with Status().
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound marks a missing order, dish, or supplier.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks a dish that exists but is currently disabled.
	ErrUnavailable = errors.New("dish unavailable")

	// ErrOwnershipMismatch marks an actor operating on a resource owned by
	// a different supplier.
	ErrOwnershipMismatch = errors.New("ownership mismatch")
)

// ValidationError is a malformed or missing input. Nothing is persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError is a status change not present in the adjacency
// table. It carries the concrete (from, to) pair for the client message.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Status maps a domain error to its HTTP status code. Unrecognised errors
// map to 500 and must be treated as internal.
func Status(err error) int {
	var (
		validation *ValidationError
		transition *InvalidTransitionError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &transition):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, ErrOwnershipMismatch):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for a domain error. Internal
// errors are masked; the real cause goes to the log, not the response.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "Internal Server Error"
	}
	return err.Error()
}
