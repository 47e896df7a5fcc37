package client

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialsRejected is returned by Login for an unknown email or a wrong password.
	ErrCredentialsRejected = errors.New("credentials rejected")
	// ErrEmailTaken is returned by Register when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrVersionConflict is returned when an order changed since it was read.
	// Re-read the order and retry with its current version.
	ErrVersionConflict = errors.New("order version conflict")
	// ErrServiceUnavailable is returned when the API could not be reached.
	ErrServiceUnavailable = errors.New("service unavailable")
)

// APIError is a non-2xx response not covered by the sentinels above.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront api: %d %s", e.StatusCode, e.Message)
}
