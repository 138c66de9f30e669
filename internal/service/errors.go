package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers translate these to HTTP
// status codes; anything else is treated as an internal persistence failure.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("operation conflicts with existing records")
)

// ValidationError is a rejected operation with a human-readable reason.
// No mutation has occurred when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
