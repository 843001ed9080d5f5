// Package entity defines the domain entities for the items feature.
package entity

import "time"

// Item is a resource owned by exactly one user. Ownership is modeled as a
// plain foreign key; the owner is loaded through the repository when needed
// rather than held as an in-memory back-pointer.
type Item struct {
	// ID is the unique identifier for the item.
	ID uint `gorm:"primaryKey"`

	// Title is the required display title.
	Title string `gorm:"size:255;not null;index"`

	// Description is optional free-form text.
	Description string `gorm:"type:text"`

	// OwnerID references the owning user's ID. Only that user may read,
	// update or delete the item.
	OwnerID uint `gorm:"not null;index"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the item was last updated.
	UpdatedAt time.Time
}
