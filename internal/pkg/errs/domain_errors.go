package errs

import "errors"

// Error kinds shared by every layer. Domain and use-case errors are marked with
// one of these so the transport can pick a status without knowing the origin.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func Unauthorized(msg string) error {
	return Mark(New(msg), ErrUnauthorized)
}

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func Conflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}
