package service

import "errors"

// Expected failures, mapped to HTTP statuses at the handler boundary.
// Anything else that escapes a service is treated as internal.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrLinkNotFound       = errors.New("link not found")
	ErrNotOwner           = errors.New("link belongs to another user")
)
