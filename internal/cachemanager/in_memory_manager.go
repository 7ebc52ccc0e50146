package cachemanager

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
)

// DefaultExpiration is the entry lifetime used when no TTL is configured.
const DefaultExpiration = 10 * time.Minute

// DefaultCleanupInterval is how often expired entries are purged.
const DefaultCleanupInterval = 30 * time.Minute

// DefaultMaxEntries bounds the number of cached diffs. A diff result holds
// every token of both inputs, so the cap is kept small.
const DefaultMaxEntries = 256

// NewInMemoryCacheManager creates a cache holding at most maxEntries items.
// maxEntries <= 0 leaves the cache unbounded.
func NewInMemoryCacheManager[K ~string, V any](useCase string, maxEntries int, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[K, V] {
	return &InMemoryCacheManager[K, V]{
		useCase:    useCase,
		maxEntries: maxEntries,
		cache:      gocache.New(defaultExpiration, cleanupInterval),
	}
}

// InMemoryCacheManager is the go-cache backed CacheManager.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase    string
	maxEntries int
	cache      *gocache.Cache
	setMu      sync.Mutex
}

// Get retrieves an item from the cache by its key
func (c *InMemoryCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(string(key))
	if !found {
		log.Debug(log.CatCache, "cache miss", "cache", c.useCase, "key", key)
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)

		return zeroValue, false
	}

	log.Debug(log.CatCache, "cache hit", "cache", c.useCase, "key", key)

	return v, true
}

// GetMultiple returns every key that is present. The bool is false only when
// none of the keys were found.
func (c *InMemoryCacheManager[K, V]) GetMultiple(ctx context.Context, keys []K) (map[K]V, bool) {
	if len(keys) == 0 {
		return nil, false
	}

	values := make(map[K]V, len(keys))
	missing := 0
	for _, key := range keys {
		value, found := c.cache.Get(string(key))
		if !found {
			missing++
			continue
		}

		v, ok := value.(V)
		if !ok {
			log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)
			missing++
			continue
		}

		values[key] = v
	}

	if len(values) == 0 {
		return nil, false
	}
	if missing > 0 {
		log.Debug(log.CatCache, "partial cache miss", "cache", c.useCase, "missing", missing, "requested", len(keys))
	}

	return values, true
}

// GetWithRefresh retrieves an item and, when found, puts it back with a
// fresh ttl.
func (c *InMemoryCacheManager[K, V]) GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool) {
	value, found := c.Get(ctx, key)
	if !found {
		return value, found
	}

	c.Set(ctx, key, value, ttl)

	return value, found
}

// Set stores value under key. New keys are dropped when the cache is full
// even after expired entries are purged; existing keys are always updated.
func (c *InMemoryCacheManager[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	c.setMu.Lock()
	defer c.setMu.Unlock()

	if c.maxEntries > 0 {
		if _, exists := c.cache.Get(string(key)); !exists && c.cache.ItemCount() >= c.maxEntries {
			c.cache.DeleteExpired()
			if c.cache.ItemCount() >= c.maxEntries {
				log.Debug(log.CatCache, "cache full, dropping entry", "cache", c.useCase, "max", c.maxEntries)
				return
			}
		}
	}

	c.cache.Set(string(key), value, ttl)
}

// Delete removes values by key.
func (c *InMemoryCacheManager[K, V]) Delete(ctx context.Context, keys ...K) error {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}

	return nil
}

// Flush removes every value.
func (c *InMemoryCacheManager[K, V]) Flush(ctx context.Context) error {
	c.cache.Flush()

	return nil
}

// Len returns the number of stored items, including expired items that
// have not been cleaned up yet.
func (c *InMemoryCacheManager[K, V]) Len() int {
	return c.cache.ItemCount()
}
