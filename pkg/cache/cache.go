// Package cache stores rendered artifacts keyed by the inputs that produced
// them.
//
// Two backends are provided: [FileCache] for the CLI, which keeps entries in
// a user cache directory, and [NullCache], which never stores anything and is
// what the pipeline uses unless caching was explicitly requested.
//
// Keys are derived by a [Keyer]. The default keyer hashes the full pattern
// configuration so any change to a parameter, the grid, or the hub produces
// a new key; [ScopedKeyer] adds a namespace such as the build version.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}
