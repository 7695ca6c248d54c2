package yougile_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yougile/go-yougile/pkg/yougile"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := yougile.NewMemoryCache(10)
	ctx := context.Background()

	entry := &yougile.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "abc123",
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := yougile.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, yougile.ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := yougile.NewMemoryCache(10)
	ctx := context.Background()

	entry := &yougile.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.Error(t, err)
	assert.ErrorIs(t, err, yougile.ErrCacheEntryExpired)
}

func TestMemoryCache_Delete(t *testing.T) {
	t.Parallel()

	cache := yougile.NewMemoryCache(10)
	ctx := context.Background()

	entry := &yougile.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)
	assert.True(t, cache.Has(ctx, "key1"))

	err = cache.Delete(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_Clear(t *testing.T) {
	t.Parallel()

	cache := yougile.NewMemoryCache(10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := &yougile.CacheEntry{
			Data:      []byte("test data"),
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		_ = cache.Set(ctx, string(rune('a'+i)), entry)
	}

	err := cache.Clear(ctx)
	require.NoError(t, err)

	assert.False(t, cache.Has(ctx, "a"))
	assert.False(t, cache.Has(ctx, "b"))
	assert.False(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_MaxSize(t *testing.T) {
	t.Parallel()

	cache := yougile.NewMemoryCache(2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := &yougile.CacheEntry{
			Data:      []byte("test data"),
			ExpiresAt: time.Now().Add(time.Duration(i+1) * time.Hour),
		}
		_ = cache.Set(ctx, string(rune('a'+i)), entry)
	}

	has := 0

	for i := 0; i < 3; i++ {
		if cache.Has(ctx, string(rune('a'+i))) {
			has++
		}
	}

	assert.LessOrEqual(t, has, 2)

	// The soonest-to-expire entry is the one evicted.
	assert.False(t, cache.Has(ctx, "a"))
}

func TestMemoryCache_Cleanup(t *testing.T) {
	t.Parallel()

	cache := yougile.NewMemoryCache(10)
	ctx := context.Background()

	_ = cache.Set(ctx, "expired", &yougile.CacheEntry{
		Data:      []byte("expired"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	})
	_ = cache.Set(ctx, "valid", &yougile.CacheEntry{
		Data:      []byte("valid"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	})

	cache.Cleanup()

	assert.True(t, cache.Has(ctx, "valid"))
	assert.False(t, cache.Has(ctx, "expired"))
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	key1 := yougile.CacheKey("GET", "/tasks", nil)
	assert.Equal(t, "GET:/tasks", key1)

	params := map[string]string{"offset": "50", "limit": "10"}
	key2 := yougile.CacheKey("GET", "/tasks", params)
	assert.Equal(t, "GET:/tasks:limit=10&offset=50", key2)

	// Parameter order never changes the key.
	key3 := yougile.CacheKey("GET", "/tasks", map[string]string{"limit": "10", "offset": "50"})
	assert.Equal(t, key2, key3)
}

func TestCachingPolicy_ShouldCache(t *testing.T) {
	t.Parallel()

	policy := yougile.DefaultCachingPolicy()

	assert.True(t, policy.ShouldCache("GET", "/tasks", 200))
	assert.False(t, policy.ShouldCache("POST", "/tasks", 201))
	assert.False(t, policy.ShouldCache("GET", "/tasks", 404))
	assert.False(t, policy.ShouldCache("GET", "/auth/companies", 200))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	cache, err := yougile.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &yougile.MemoryCache{}, cache)

	cache, err = yougile.NewCacheFromConfig(&yougile.CacheConfig{Type: yougile.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &yougile.NoOpCache{}, cache)

	_, err = yougile.NewCacheFromConfig(&yougile.CacheConfig{Type: yougile.CacheTypeNATS})
	assert.ErrorIs(t, err, yougile.ErrNATSConfigMissing)

	_, err = yougile.NewCacheFromConfig(&yougile.CacheConfig{Type: "redis"})
	assert.ErrorIs(t, err, yougile.ErrUnsupportedCache)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := yougile.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &yougile.CacheEntry{Data: []byte("x")}))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, yougile.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
}
