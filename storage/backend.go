// Package storage provides the storage contract encoded action payloads are
// kept against, together with two in-memory implementations: MemoryStore,
// the unbounded reference backend, and BoundedStore, which caps its entry
// count with LRU eviction.
package storage

import (
	"context"
	"time"

	"github.com/smoxy/telegram-menu-builder/types"
)

// ErrNotFound is returned when a key is absent or its entry has expired.
var ErrNotFound = types.NewError(types.KindNotFound, "key not found in storage")

// ErrClosed is returned when a store is used after Close.
var ErrClosed = types.NewError(types.KindStorage, "storage backend is closed")

// Backend is the contract stored action payloads are written and read
// through. Implementations can be in-memory, Redis-backed, database tables,
// or anything else keyed by string.
//
// A zero ttl on Set means the value never expires. Get returns ErrNotFound
// for keys that are absent or expired. Returned values must be independent
// copies: mutation by the caller must not corrupt the stored value.
type Backend interface {
	// Set stores value under key, replacing any previous entry. A ttl
	// greater than zero bounds the entry lifetime; zero means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key and reports whether an entry existed.
	Delete(ctx context.Context, key string) (bool, error)

	// Exists reports whether key holds a live entry.
	Exists(ctx context.Context, key string) (bool, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Keys lists the live keys matching the glob pattern. An empty
	// pattern lists every key.
	Keys(ctx context.Context, pattern string) ([]string, error)
}
