package storage

import (
	"context"
	"fmt"
	"path"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/smoxy/telegram-menu-builder/types"
)

// BoundedStore is a Backend that caps how many payloads it holds. When the
// cap is reached, storing a new payload evicts the least recently used
// entry, so a long-running process cannot grow its callback storage without
// bound. Expiry works like MemoryStore: deadlines are checked lazily when
// an entry is next touched.
//
// An evicted entry makes its tokens undecodable just like an expired one,
// so size the store for the number of simultaneously live menus.
//
// Like MemoryStore, a BoundedStore is not safe for concurrent use. Wrap it
// in a SyncedStore to share it across goroutines.
type BoundedStore struct {
	entries *lru.LRU[string, []byte]
	expiry  map[string]time.Time
	cap     int
	closed  bool

	now func() time.Time
}

// NewBoundedStore creates a BoundedStore holding at most maxEntries
// payloads.
func NewBoundedStore(maxEntries int) (*BoundedStore, error) {
	if maxEntries < 1 {
		return nil, types.NewError(types.KindValidation, fmt.Sprintf("bounded store capacity must be positive, got %d", maxEntries))
	}
	s := &BoundedStore{
		expiry: make(map[string]time.Time),
		cap:    maxEntries,
		now:    time.Now,
	}
	entries, err := lru.NewLRU(maxEntries, func(key string, _ []byte) {
		delete(s.expiry, key)
	})
	if err != nil {
		return nil, types.WrapError(types.KindStorage, "failed to create bounded store", err)
	}
	s.entries = entries
	return s, nil
}

// Set stores a copy of value under key, evicting the least recently used
// entry when the store is full. A ttl greater than zero sets the expiry
// deadline; zero removes any previous deadline.
func (s *BoundedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.closed {
		return ErrClosed
	}
	s.entries.Add(key, append([]byte(nil), value...))
	if ttl > 0 {
		s.expiry[key] = s.now().Add(ttl)
	} else {
		delete(s.expiry, key)
	}
	return nil
}

// Get returns a copy of the value stored under key, or ErrNotFound when the
// key is absent, expired, or evicted. A hit marks the entry as recently
// used.
func (s *BoundedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.expired(key) {
		s.entries.Remove(key)
		return nil, ErrNotFound
	}
	value, ok := s.entries.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Delete removes key and reports whether an entry existed, expired or not.
func (s *BoundedStore) Delete(ctx context.Context, key string) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	return s.entries.Remove(key), nil
}

// Exists reports whether key holds a live entry, sweeping it when expired.
// Unlike Get it does not refresh the entry's recency.
func (s *BoundedStore) Exists(ctx context.Context, key string) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	if s.expired(key) {
		s.entries.Remove(key)
		return false, nil
	}
	return s.entries.Contains(key), nil
}

// Clear removes every entry.
func (s *BoundedStore) Clear(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	s.entries.Purge()
	return nil
}

// Keys sweeps expired entries, then lists the remaining keys in sorted
// order. A non-empty pattern filters with glob matching (* and ? wildcards).
func (s *BoundedStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	if s.closed {
		return nil, ErrClosed
	}
	keys := make([]string, 0, s.entries.Len())
	for _, key := range s.entries.Keys() {
		if s.expired(key) {
			s.entries.Remove(key)
			continue
		}
		if pattern != "" {
			ok, err := path.Match(pattern, key)
			if err != nil {
				return nil, types.WrapError(types.KindStorage, fmt.Sprintf("invalid key pattern %q", pattern), err)
			}
			if !ok {
				continue
			}
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// CleanupExpired removes every expired entry and returns how many were
// removed, freeing their slots for new payloads.
func (s *BoundedStore) CleanupExpired(ctx context.Context) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	removed := 0
	for key := range s.expiry {
		if s.expired(key) {
			s.entries.Remove(key)
			removed++
		}
	}
	return removed, nil
}

// Len returns how many entries the store currently holds, expired ones
// included.
func (s *BoundedStore) Len() int {
	return s.entries.Len()
}

// Cap returns the maximum number of entries the store will hold.
func (s *BoundedStore) Cap() int {
	return s.cap
}

// Close releases the stored data. Further operations return ErrClosed.
// Closing an already closed store is a no-op.
func (s *BoundedStore) Close() error {
	if s.closed {
		return nil
	}
	s.entries.Purge()
	s.expiry = nil
	s.closed = true
	return nil
}

// Closed reports whether the store has been closed.
func (s *BoundedStore) Closed() bool {
	return s.closed
}

// expired reports whether key carries a deadline strictly in the past.
func (s *BoundedStore) expired(key string) bool {
	deadline, ok := s.expiry[key]
	return ok && s.now().After(deadline)
}
