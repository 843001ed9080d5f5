// Package adapters provides the repository implementations for the items feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"item_backend/internal/feature/items/domain/entity"
	"item_backend/internal/feature/items/usecase"
)

// itemGorm is the gorm implementation of the ItemRepository interface.
type itemGorm struct {
	db *gorm.DB
}

// Compile-time check that itemGorm implements ItemRepository.
var _ usecase.ItemRepository = (*itemGorm)(nil)

// NewItemRepository creates a new itemGorm backed by the given connection.
func NewItemRepository(db *gorm.DB) *itemGorm {
	return &itemGorm{db: db}
}

// Create adds an item to the database.
func (r *itemGorm) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID retrieves an item by ID.
// It returns usecase.ErrItemNotFound when no such item exists.
func (r *itemGorm) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListByOwner retrieves a page of items belonging to the given owner,
// oldest first.
func (r *itemGorm) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves changes to an existing item.
func (r *itemGorm) Update(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item by ID.
// It returns usecase.ErrItemNotFound when no row was deleted.
func (r *itemGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}
