// Package cache provides storage backends for rendered cards.
//
// The server caches finished SVG documents keyed by the full render
// request (username plus every option that affects the output), so
// repeated requests for the same card skip both the GitHub fetch and
// the render. Three backends are provided:
//   - FileCache: file-based storage for single-instance deployments
//   - RedisCache: Redis-backed storage for multi-instance deployments
//   - NullCache: no-op storage for tests or when caching is disabled
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface for rendered-card storage backends.
type Cache interface {
	// Get retrieves a value from the cache.
	// The second return value reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
