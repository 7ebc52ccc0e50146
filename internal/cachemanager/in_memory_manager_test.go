package cachemanager

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type cacheKey string

type cachedDiff struct {
	Additions int
	Lines     []string
}

func newTestCache(maxEntries int) *InMemoryCacheManager[cacheKey, cachedDiff] {
	return NewInMemoryCacheManager[cacheKey, cachedDiff]("diff-results", maxEntries, DefaultExpiration, DefaultCleanupInterval)
}

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultMaxEntries, DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := newTestCache(0)
	value := cachedDiff{Additions: 2, Lines: []string{"+a", "+b"}}
	cache.Set(context.Background(), "k1", value, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "k1")
	require.True(t, ok)
	require.Equal(t, value, got)
}

func TestInMemoryCacheManager_GetMissing(t *testing.T) {
	cache := newTestCache(0)

	got, ok := cache.Get(context.Background(), "k1")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := newTestCache(0)
	cache.cache.Set("k1", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "k1")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetMultiple(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("stats", 0, DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetMultiple(context.Background(), nil)
	require.False(t, ok)
	require.Nil(t, got)

	got, ok = cache.GetMultiple(context.Background(), []string{"a", "b"})
	require.False(t, ok)
	require.Nil(t, got)

	cache.Set(context.Background(), "a", "+1 -0", DefaultExpiration)
	cache.cache.Set("b", 42, DefaultExpiration)

	got, ok = cache.GetMultiple(context.Background(), []string{"a", "b", "c"})
	require.True(t, ok)
	require.Equal(t, map[string]string{"a": "+1 -0"}, got)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := newTestCache(0)

	_, ok := cache.GetWithRefresh(context.Background(), "k1", time.Hour)
	require.False(t, ok)

	cache.Set(context.Background(), "k1", cachedDiff{Additions: 1}, 50*time.Millisecond)
	got, ok := cache.GetWithRefresh(context.Background(), "k1", time.Hour)
	require.True(t, ok)
	require.Equal(t, 1, got.Additions)

	time.Sleep(100 * time.Millisecond)

	_, ok = cache.Get(context.Background(), "k1")
	require.True(t, ok, "refresh should have extended the ttl")
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	cache := newTestCache(0)
	ctx := context.Background()

	require.NoError(t, cache.Delete(ctx))

	cache.Set(ctx, "k1", cachedDiff{}, DefaultExpiration)
	cache.Set(ctx, "k2", cachedDiff{}, DefaultExpiration)

	require.NoError(t, cache.Delete(ctx, "k1"))
	_, ok := cache.Get(ctx, "k1")
	require.False(t, ok)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Flush(ctx))
	require.Zero(t, cache.Len())
}

func TestInMemoryCacheManager_BoundedDropsNewKeysWhenFull(t *testing.T) {
	cache := newTestCache(3)
	ctx := context.Background()

	for i := range 5 {
		cache.Set(ctx, cacheKey(fmt.Sprintf("k%d", i)), cachedDiff{Additions: i}, DefaultExpiration)
	}

	require.Equal(t, 3, cache.Len())
	_, ok := cache.Get(ctx, "k3")
	require.False(t, ok, "entries past the bound are dropped")

	// Existing keys can still be updated.
	cache.Set(ctx, "k0", cachedDiff{Additions: 99}, DefaultExpiration)
	got, ok := cache.Get(ctx, "k0")
	require.True(t, ok)
	require.Equal(t, 99, got.Additions)
}

func TestInMemoryCacheManager_BoundedEvictsExpired(t *testing.T) {
	cache := newTestCache(2)
	ctx := context.Background()

	cache.Set(ctx, "short", cachedDiff{}, 10*time.Millisecond)
	cache.Set(ctx, "long", cachedDiff{}, DefaultExpiration)
	time.Sleep(30 * time.Millisecond)

	cache.Set(ctx, "new", cachedDiff{Additions: 7}, DefaultExpiration)

	got, ok := cache.Get(ctx, "new")
	require.True(t, ok, "expired entry should make room")
	require.Equal(t, 7, got.Additions)
	require.Equal(t, 2, cache.Len())
}
