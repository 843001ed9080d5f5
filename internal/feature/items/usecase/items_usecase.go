package usecase

import (
	"context"
	"strings"

	"item_backend/internal/feature/items/domain/entity"
)

const (
	// defaultListLimit caps item listings when the caller does not set one.
	defaultListLimit = 100
)

// ItemRepository abstracts the persistence layer for item entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ItemRepository interface {
	// Create persists a new item to the storage.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by ID. It returns ErrItemNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Item, error)

	// ListByOwner retrieves a page of items belonging to the given owner.
	ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uint) error
}

// ItemUsecase provides per-owner item CRUD with ownership enforcement.
// ownerID is always the guard-resolved caller, never client input.
type ItemUsecase struct {
	items ItemRepository
}

// NewItemUsecase creates a new ItemUsecase with the given repository.
func NewItemUsecase(items ItemRepository) *ItemUsecase {
	return &ItemUsecase{items: items}
}

// List returns a page of the caller's own items.
func (u *ItemUsecase) List(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Item, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return u.items.ListByOwner(ctx, ownerID, offset, limit)
}

// Create stores a new item owned by the caller.
func (u *ItemUsecase) Create(ctx context.Context, ownerID uint, title, description string) (*entity.Item, error) {
	item := &entity.Item{
		Title:       strings.TrimSpace(title),
		Description: description,
		OwnerID:     ownerID,
	}
	if err := u.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get returns a single item after the ownership check.
func (u *ItemUsecase) Get(ctx context.Context, ownerID, itemID uint) (*entity.Item, error) {
	return u.findOwned(ctx, ownerID, itemID)
}

// Update applies the non-nil fields to an owned item.
func (u *ItemUsecase) Update(ctx context.Context, ownerID, itemID uint, title, description *string) (*entity.Item, error) {
	item, err := u.findOwned(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		item.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		item.Description = *description
	}

	if err := u.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an owned item.
func (u *ItemUsecase) Delete(ctx context.Context, ownerID, itemID uint) error {
	if _, err := u.findOwned(ctx, ownerID, itemID); err != nil {
		return err
	}
	return u.items.Delete(ctx, itemID)
}

// findOwned loads an item and enforces the ownership rule. Existence is
// checked before ownership: a missing item is ErrItemNotFound, a foreign one
// is ErrNotOwner.
func (u *ItemUsecase) findOwned(ctx context.Context, ownerID, itemID uint) (*entity.Item, error) {
	item, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return item, nil
}
