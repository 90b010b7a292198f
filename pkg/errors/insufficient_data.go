package errors

import (
	"errors"
	"fmt"
)

// InsufficientDataError is returned when a security does not carry enough bars
// for a calculation (e.g. an indicator window longer than the series).
type InsufficientDataError struct {
	Required int    // Minimum bars required
	Actual   int    // Bars available
	Code     string // Optional: security code
	Message  string
}

// NewInsufficientDataErrorf creates a new InsufficientDataError with a formatted message.
func NewInsufficientDataErrorf(required, actual int, code, format string, args ...any) *InsufficientDataError {
	return &InsufficientDataError{
		Required: required,
		Actual:   actual,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *InsufficientDataError) Error() string {
	return e.Message
}

// IsInsufficientDataError checks the error chain for an InsufficientDataError.
func IsInsufficientDataError(err error) bool {
	var insufficientErr *InsufficientDataError

	return errors.As(err, &insufficientErr)
}
