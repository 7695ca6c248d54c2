package yougile

import (
	"context"
	"fmt"
)

// CacheType selects the cache backend.
type CacheType string

const (
	// CacheTypeMemory is the in-process cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS is the shared NATS JetStream KV cache.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone disables caching.
	CacheTypeNone CacheType = "none"
)

// CacheConfig configures the response cache.
type CacheConfig struct {
	// Type selects the backend.
	Type CacheType

	// MaxSize bounds the memory backend's entry count.
	MaxSize int

	// NATS configures the NATS backend. Required when Type is "nats".
	NATS *NATSKVConfig

	// Policy decides which responses are cached. Nil uses
	// DefaultCachingPolicy.
	Policy *CachingPolicy
}

// DefaultCacheConfig returns the memory backend with default policy.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type:    CacheTypeMemory,
		MaxSize: 1000,
		Policy:  DefaultCachingPolicy(),
	}
}

// NewCacheFromConfig creates a cache backend from configuration.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory:
		return NewMemoryCache(config.MaxSize), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigMissing
		}

		return NewNATSKVCache(config.NATS)

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCache, config.Type)
	}
}

// NoOpCache is a cache that stores nothing.
type NoOpCache struct{}

// NewNoOpCache creates a cache that stores nothing.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always reports a disabled cache.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}
