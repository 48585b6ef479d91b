package core

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Package errors wrap one of these.
var (
	// ErrInvalidInput marks input rejected before any computation began.
	ErrInvalidInput = errors.New("reliefplan: invalid input")

	// ErrResourceExceeded marks an instance above a configured size ceiling.
	ErrResourceExceeded = errors.New("reliefplan: resource limit exceeded")

	// ErrDuplicateRegion indicates two regions share a name.
	ErrDuplicateRegion = fmt.Errorf("%w: duplicate region name", ErrInvalidInput)
)

// InputError describes a single rejected field. It unwraps to ErrInvalidInput.
type InputError struct {
	Field  string
	Reason string
}

func (e InputError) Error() string {
	return fmt.Sprintf("reliefplan: invalid input: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e InputError) Unwrap() error { return ErrInvalidInput }

// LimitError reports an instance whose Size is above Limit.
// It unwraps to ErrResourceExceeded.
type LimitError struct {
	What  string
	Size  int
	Limit int
}

func (e LimitError) Error() string {
	return fmt.Sprintf("reliefplan: %s size %d exceeds limit %d", e.What, e.Size, e.Limit)
}

// Unwrap lets errors.Is(err, ErrResourceExceeded) match.
func (e LimitError) Unwrap() error { return ErrResourceExceeded }

// Invalid is shorthand for building an InputError.
func Invalid(field, format string, args ...interface{}) error {
	return InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
