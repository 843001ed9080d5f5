// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"item_backend/internal/feature/items/domain/entity"
	"item_backend/internal/feature/items/usecase"
)

// CachingItemRepository decorates an ItemRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Every mutation flows through the
// decorator and invalidates the affected keys, so reads stay consistent on a
// single node.
type CachingItemRepository struct {
	inner     usecase.ItemRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator satisfies the decorated interface.
var _ usecase.ItemRepository = (*CachingItemRepository)(nil)

// NewCachingItemRepository decorates an ItemRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "items".
func NewCachingItemRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ItemRepository, namespace string) *CachingItemRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "items"
	}
	return &CachingItemRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the item and invalidates the owner's list entries.
func (c *CachingItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx, item)
	return nil
}

// FindByID retrieves an item, checking cache first then falling back to the database.
func (c *CachingItemRepository) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Item
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ListByOwner retrieves a page of the owner's items, cached per page.
func (c *CachingItemRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Item, error) {
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID, offset, limit)
	}

	key := c.listKey(ownerID, offset, limit)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Item
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update saves the item and invalidates its cache entries.
func (c *CachingItemRepository) Update(ctx context.Context, item *entity.Item) error {
	if err := c.inner.Update(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx, item)
	return nil
}

// Delete removes the item and invalidates its cache entries. The item key is
// dropped unconditionally; list invalidation is best effort because the owner
// is unknown after deletion, so list entries expire via TTL instead.
func (c *CachingItemRepository) Delete(ctx context.Context, id uint) error {
	var ownerID uint
	if c.rdb != nil {
		if item, err := c.inner.FindByID(ctx, id); err == nil {
			ownerID = item.OwnerID
		}
	}
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.itemKey(id)).Err()
	if ownerID != 0 {
		_ = c.deleteByPattern(ctx, c.listKeyPrefix(ownerID)+"*")
	}
	return nil
}

// invalidate drops the item key and the owner's list entries (best effort).
func (c *CachingItemRepository) invalidate(ctx context.Context, item *entity.Item) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.itemKey(item.ID)).Err()
	_ = c.deleteByPattern(ctx, c.listKeyPrefix(item.OwnerID)+"*")
}

// itemKey generates the cache key for a single item.
func (c *CachingItemRepository) itemKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// listKey generates the cache key for one page of an owner's items.
func (c *CachingItemRepository) listKey(ownerID uint, offset, limit int) string {
	return fmt.Sprintf("%s%d:%d", c.listKeyPrefix(ownerID), offset, limit)
}

// listKeyPrefix generates the prefix shared by all of an owner's list pages.
func (c *CachingItemRepository) listKeyPrefix(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d:", c.namespace, ownerID)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingItemRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
