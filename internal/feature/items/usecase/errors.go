// Package usecase implements the business logic for the items feature.
package usecase

import "errors"

var (
	// ErrItemNotFound is returned when no item exists with the requested ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotOwner is returned when the item exists but belongs to another
	// user. It is distinct from ErrItemNotFound so the boundary can answer
	// 403 instead of 404.
	ErrNotOwner = errors.New("not the item owner")
)
