package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError marks input the caller can correct. Handlers report it
// with its message; any other unexpected error stays internal.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Validation builds a ValidationError from a plain message.
func Validation(msg string) error { return ValidationError(msg) }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return ValidationError(fmt.Sprintf(format, args...))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
