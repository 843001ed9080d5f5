// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email, username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email that is already taken.
	ErrEmailAlreadyExists = errors.New("a user with this email already exists")

	// ErrUsernameAlreadyExists is returned when attempting to register a username that is already taken.
	ErrUsernameAlreadyExists = errors.New("a user with this username already exists")

	// ErrInvalidCredentials is returned when the email or password is wrong.
	// Unknown email and wrong password collapse into it deliberately.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInactiveUser is returned when the account exists but has been deactivated.
	// Externally it still maps to 401, same as ErrInvalidCredentials.
	ErrInactiveUser = errors.New("inactive user")
)
