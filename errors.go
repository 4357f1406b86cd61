package main

import "errors"

// Authentication and resource failure taxonomy. Handlers map these to
// HTTP statuses and structured bodies; nothing below the handler layer
// writes to the client.
var (
	ErrMissingCredentials = errors.New("both email and password are required")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrNotFound           = errors.New("record not found")
	ErrAuthBackend        = errors.New("authentication backend error")
)
