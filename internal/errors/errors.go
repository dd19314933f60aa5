package errors

import "errors"

var (
	// ErrRepositoryNotFound is returned when a repository id does not exist.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials is returned on login failure. The same error covers
	// both an unknown email and a wrong password so that responses cannot be
	// used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrSessionNotFound is returned when a session token is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
)
