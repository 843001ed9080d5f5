// Package di selects between alternative component implementations at startup.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	itemadapters "item_backend/internal/feature/items/adapters"
	"item_backend/internal/feature/items/usecase"
	"item_backend/internal/platform/cache"
)

// NewItemRepository creates the ItemRepository implementation.
// When Redis is available the gorm repository is wrapped with the caching
// decorator; otherwise the plain repository is used directly.
func NewItemRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.ItemRepository {
	inner := itemadapters.NewItemRepository(db)
	if rdb == nil {
		return inner
	}
	return cache.NewCachingItemRepository(rdb, ttl, inner, "items")
}
