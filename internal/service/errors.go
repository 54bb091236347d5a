package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the backend has no such list or task.
	ErrNotFound = errors.New("not found")

	// ErrInvalid is returned when a record fails validation at the data boundary.
	ErrInvalid = errors.New("invalid data")

	// ErrTimeout is returned when a backend call exceeds its deadline.
	ErrTimeout = errors.New("request timed out")
)

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Unwrap maps 404 to ErrNotFound.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
