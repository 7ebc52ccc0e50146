package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache returns cached values and falls back to fn on a miss,
// storing successful results.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache           CacheManager[K, V]
	fn              func(ctx context.Context, input I) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the cached value for key, or computes it from input. The bool
// reports whether the value came from the cache.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, bool, error) {
	if r.shouldSkipCache {
		value, err := r.fn(ctx, input)
		return value, false, err
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, true, nil
	}

	return r.load(ctx, key, input, ttl)
}

// GetWithRefresh is Get with a sliding ttl on hits.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, bool, error) {
	if r.shouldSkipCache {
		value, err := r.fn(ctx, input)
		return value, false, err
	}

	if value, ok := r.cache.GetWithRefresh(ctx, key, ttl); ok {
		return value, true, nil
	}

	return r.load(ctx, key, input, ttl)
}

func (r *ReadThroughCache[K, V, I]) load(ctx context.Context, key K, input I, ttl time.Duration) (V, bool, error) {
	value, err := r.fn(ctx, input)
	if err != nil {
		return value, false, err
	}

	r.cache.Set(ctx, key, value, ttl)

	return value, false, nil
}
