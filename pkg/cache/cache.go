// Package cache stores computed layouts and rendered artifacts by content hash.
//
// # Overview
//
// Layouts are pure functions of a tree and a viewport, and artifacts are pure
// functions of a layout and a render format, so both can be cached under keys
// derived from hashes of their inputs (see [Keyer]). A cache is always an
// optimization: callers treat Get errors as misses and ignore Set errors.
//
// # Backends
//
//   - [NullCache]: never stores anything (--no-cache).
//   - [FileCache]: one JSON file per entry under a directory (CLI default).
//   - [BoltCache]: a single bbolt database file.
//   - [RedisCache]: a shared Redis instance, for the API server.
//
// All backends honor TTLs. Backends that can drop every entry implement
// [Clearer].
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	LayoutTTL   = 24 * time.Hour
	ArtifactTTL = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is
	// reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop all their entries.
type Clearer interface {
	Clear(ctx context.Context) error
}

// entry wraps cached data with its expiry. File and bolt backends store it
// as JSON.
type entry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newEntry(data []byte, ttl time.Duration) entry {
	e := entry{Data: data}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}
	return e
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}
