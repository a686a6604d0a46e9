package logic

import (
	"errors"
)

// Error taxonomy. Handlers map these onto HTTP status codes; everything
// else surfaces as an internal error. Wrap with fmt.Errorf("...: %w", ...)
// to attach a human-readable message.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")
)
