package yougile

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Cache defines the interface for response caching backends.
type Cache interface {
	// Get retrieves a cached entry by key.
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Set stores an entry under key.
	Set(ctx context.Context, key string, entry *CacheEntry) error

	// Delete removes an entry by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Has reports whether a non-expired entry exists for key.
	Has(ctx context.Context, key string) bool
}

// CacheEntry is a cached response body with expiry metadata.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Expired reports whether the entry's TTL has elapsed.
func (e *CacheEntry) Expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// MemoryCache is an in-memory cache with a bounded entry count.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewMemoryCache creates an in-memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 1000
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves a cached entry by key.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Expired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry, evicting the soonest-to-expire entry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry

	return nil
}

// evictOldest removes the entry with the earliest expiry. Caller holds the lock.
func (c *MemoryCache) evictOldest() {
	var (
		oldestKey string
		oldestAt  time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.ExpiresAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.ExpiresAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Delete removes an entry by key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has reports whether a non-expired entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && !entry.Expired()
}

// Cleanup removes all expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.Expired() {
			delete(c.entries, key)
		}
	}
}

// CacheKey builds a canonical cache key from method, path and sorted params.
func CacheKey(method, path string, params map[string]string) string {
	if len(params) == 0 {
		return method + ":" + path
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	return method + ":" + path + ":" + strings.Join(pairs, "&")
}

// CachingPolicy decides which responses are cacheable.
type CachingPolicy struct {
	// CacheGET enables caching of GET responses.
	CacheGET bool

	// TTL is the entry lifetime.
	TTL time.Duration

	// ExcludePaths lists path prefixes never cached.
	ExcludePaths []string
}

// DefaultCachingPolicy caches GET responses for five minutes, excluding the
// authentication endpoints.
func DefaultCachingPolicy() *CachingPolicy {
	return &CachingPolicy{
		CacheGET:     true,
		TTL:          5 * time.Minute,
		ExcludePaths: []string{"/auth/"},
	}
}

// ShouldCache reports whether a response for method/path/status is cacheable.
func (p *CachingPolicy) ShouldCache(method, path string, statusCode int) bool {
	if statusCode < 200 || statusCode >= 300 {
		return false
	}

	if method != "GET" || !p.CacheGET {
		return false
	}

	for _, prefix := range p.ExcludePaths {
		if strings.Contains(path, prefix) {
			return false
		}
	}

	return true
}
