// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists with the requested ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a profile update would claim another user's email.
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrUsernameTaken is returned when a profile update would claim another user's username.
	ErrUsernameTaken = errors.New("a user with this username already exists")
)
