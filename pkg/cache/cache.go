// Package cache provides the solve-result cache used by the HTTP API.
//
// A solved scenario is a pure function of its parameters, so responses
// are cached under a hash of the request parameters. The numerical core
// knows nothing about caching; only the server layer consults this
// package, and a cache miss simply re-solves.
//
// Backends: [MemoryCache] for single-process deployments and tests,
// [RedisCache] for shared deployments, [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized values under string keys with an optional TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
