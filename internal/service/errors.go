package service

import "errors"

var (
	// ErrNotFound is returned when an owner-scoped lookup finds nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateName is returned when an ingredient name collides with
	// another of the same owner, case-insensitively.
	ErrDuplicateName = errors.New("name already in use")
	// ErrInvalidInput wraps user-correctable validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned on failed login attempts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
