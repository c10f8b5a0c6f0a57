// Package user provides use cases for managing user accounts.
// It implements business logic for creating, updating, deleting, and querying
// users, including password hashing and interaction with the user repository.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that a user with the same email already exists.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials indicates that authentication failed.
	// The same error is returned for an unknown email, a wrong password and
	// a deactivated account so callers cannot probe for registered emails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
