// Package cache stores rendered raster artifacts between runs.
//
// The export command rasterizes every SizeSpec of a manifest. Most runs change
// nothing, so each PNG is cached under a key derived from the SVG source bytes
// and the target dimensions (see [RasterKey]). A changed source produces a new
// key and the stale entry simply ages out.
//
// Two implementations are provided: [FileCache] for CLI use, rooted in the
// user's cache directory, and [NullCache] for --no-cache and tests.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
