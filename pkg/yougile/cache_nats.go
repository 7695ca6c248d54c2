package yougile

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL. Defaults to nats.DefaultURL.
	URL string

	// Bucket is the KV bucket name. Defaults to "yougile-cache".
	Bucket string

	// TTL is the bucket-level entry lifetime. Zero disables server expiry
	// and entries are evicted by their own ExpiresAt on read.
	TTL time.Duration

	// Credentials is an optional NATS credentials file path.
	Credentials string
}

// NATSKVCache stores cache entries in a NATS JetStream key-value bucket,
// letting several client processes share one response cache.
type NATSKVCache struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// NewNATSKVCache connects to NATS and binds or creates the configured bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigMissing
	}

	url := config.URL
	if url == "" {
		url = nats.DefaultURL
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = "yougile-cache"
	}

	var opts []nats.Option
	if config.Credentials != "" {
		opts = append(opts, nats.UserCredentials(config.Credentials))
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	kv, err := js.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", bucket, err)
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// encodeKey makes cache keys safe for the NATS KV key charset.
func encodeKey(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key))
}

// Get retrieves a cached entry by key.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(encodeKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
		}

		return nil, fmt.Errorf("reading KV entry: %w", err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(kvEntry.Value(), &entry); err != nil {
		return nil, fmt.Errorf("decoding KV entry: %w", err)
	}

	if entry.Expired() {
		_ = c.kv.Delete(encodeKey(key))

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return &entry, nil
}

// Set stores an entry under key.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding KV entry: %w", err)
	}

	if _, err := c.kv.Put(encodeKey(key), data); err != nil {
		return fmt.Errorf("writing KV entry: %w", err)
	}

	return nil
}

// Delete removes an entry by key.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(encodeKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting KV entry: %w", err)
	}

	return nil
}

// Clear removes all entries from the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing KV keys: %w", err)
	}

	for _, key := range keys {
		if err := c.kv.Purge(key); err != nil {
			return fmt.Errorf("purging KV entry: %w", err)
		}
	}

	return nil
}

// Has reports whether a non-expired entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	entry, err := c.Get(ctx, key)

	return err == nil && entry != nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}
