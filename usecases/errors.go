package usecases

import "errors"

// Domain failures. Handlers map these to HTTP statuses with errors.Is;
// anything else is treated as an internal error.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateHandle    = errors.New("handle already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
)
