package storage

import (
	"context"
	"sync"
	"time"
)

// SyncedStore wraps a Backend with a mutex so one store can be shared
// across goroutines. Every operation serializes through the same lock:
// backends with lazy expiry mutate state on reads too, so no read/write
// lock distinction is safe here.
type SyncedStore struct {
	mu      sync.Mutex
	backend Backend
}

// NewSyncedStore wraps backend. The backend must not be used directly while
// the wrapper is in use.
func NewSyncedStore(backend Backend) *SyncedStore {
	return &SyncedStore{backend: backend}
}

// Set stores value under key through the wrapped backend.
func (s *SyncedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Set(ctx, key, value, ttl)
}

// Get retrieves the value stored under key through the wrapped backend.
func (s *SyncedStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Get(ctx, key)
}

// Delete removes key through the wrapped backend.
func (s *SyncedStore) Delete(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(ctx, key)
}

// Exists reports whether key holds a live entry in the wrapped backend.
func (s *SyncedStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Exists(ctx, key)
}

// Clear removes every entry from the wrapped backend.
func (s *SyncedStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Clear(ctx)
}

// Keys lists matching keys from the wrapped backend.
func (s *SyncedStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Keys(ctx, pattern)
}
