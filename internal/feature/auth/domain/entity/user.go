// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Username is the user's display handle. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// HashedPassword is the bcrypt digest of the user's password.
	// Plaintext passwords are never stored and the digest never leaves the server.
	HashedPassword string `gorm:"size:255;not null"`

	// FullName is an optional display name.
	FullName string `gorm:"size:255"`

	// IsActive gates authentication: inactive users are rejected by the
	// authorization guard even when they present a valid token.
	IsActive bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
