package auth

import "errors"

var (
	// ErrMissingCredentials signals an empty email or password field.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken signals a duplicate registration.
	ErrEmailTaken = errors.New("email already registered")
)
