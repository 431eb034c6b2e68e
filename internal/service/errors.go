package service

import "errors"

var (
	// ErrValidation marks input rejected before any collaborator was called.
	ErrValidation = errors.New("validation error")

	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong credential alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrNoSession     = errors.New("no active session")
	ErrSavingProfile = errors.New("error saving profile")
)
