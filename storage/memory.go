package storage

import (
	"context"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/smoxy/telegram-menu-builder/types"
)

// MemoryStore is the in-memory reference implementation of Backend. Entries
// live in process memory and are lost on restart. Expired entries are
// removed lazily when they are next touched by Get, Exists, or Keys, or in
// bulk by CleanupExpired.
//
// MemoryStore is not safe for concurrent use: reads can remove expired
// entries, so even Get mutates internal state. Wrap it in a SyncedStore to
// share it across goroutines.
type MemoryStore struct {
	data   map[string][]byte
	expiry map[string]time.Time
	closed bool

	now func() time.Time
}

// MemoryStats describes the state of a MemoryStore at a point in time.
type MemoryStats struct {
	// TotalKeys counts every stored entry, expired ones included.
	TotalKeys int
	// KeysWithTTL counts entries that carry an expiry deadline.
	KeysWithTTL int
	// ExpiredKeys counts entries past their deadline but not yet swept.
	ExpiredKeys int
	// ActiveKeys counts entries that are still live.
	ActiveKeys int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:   make(map[string][]byte),
		expiry: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Set stores a copy of value under key. A ttl greater than zero sets the
// expiry deadline; zero removes any previous deadline.
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.closed {
		return ErrClosed
	}
	m.data[key] = append([]byte(nil), value...)
	if ttl > 0 {
		m.expiry[key] = m.now().Add(ttl)
	} else {
		delete(m.expiry, key)
	}
	return nil
}

// Get returns a copy of the value stored under key, or ErrNotFound when the
// key is absent or expired. An expired entry is removed on the way out.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	if m.expired(key) {
		m.remove(key)
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Delete removes key and reports whether an entry existed, expired or not.
func (m *MemoryStore) Delete(ctx context.Context, key string) (bool, error) {
	if m.closed {
		return false, ErrClosed
	}
	_, existed := m.data[key]
	m.remove(key)
	return existed, nil
}

// Exists reports whether key holds a live entry, sweeping it when expired.
func (m *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.closed {
		return false, ErrClosed
	}
	if _, ok := m.data[key]; !ok {
		return false, nil
	}
	if m.expired(key) {
		m.remove(key)
		return false, nil
	}
	return true, nil
}

// Clear removes every entry.
func (m *MemoryStore) Clear(ctx context.Context) error {
	if m.closed {
		return ErrClosed
	}
	clear(m.data)
	clear(m.expiry)
	return nil
}

// Keys sweeps expired entries, then lists the remaining keys in sorted
// order. A non-empty pattern filters with glob matching (* and ? wildcards).
func (m *MemoryStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	if m.closed {
		return nil, ErrClosed
	}
	for key := range m.expiry {
		if m.expired(key) {
			m.remove(key)
		}
	}
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
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
// removed. Useful for periodic cleanup in long-running processes.
func (m *MemoryStore) CleanupExpired(ctx context.Context) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	removed := 0
	for key := range m.expiry {
		if m.expired(key) {
			m.remove(key)
			removed++
		}
	}
	return removed, nil
}

// Stats reports entry counts without sweeping anything.
func (m *MemoryStore) Stats() (MemoryStats, error) {
	if m.closed {
		return MemoryStats{}, ErrClosed
	}
	expired := 0
	for key := range m.expiry {
		if m.expired(key) {
			expired++
		}
	}
	return MemoryStats{
		TotalKeys:   len(m.data),
		KeysWithTTL: len(m.expiry),
		ExpiredKeys: expired,
		ActiveKeys:  len(m.data) - expired,
	}, nil
}

// Close releases the stored data. Further operations return ErrClosed.
// Closing an already closed store is a no-op.
func (m *MemoryStore) Close() error {
	if m.closed {
		return nil
	}
	m.data = nil
	m.expiry = nil
	m.closed = true
	return nil
}

// Closed reports whether the store has been closed.
func (m *MemoryStore) Closed() bool {
	return m.closed
}

// expired reports whether key carries a deadline strictly in the past.
func (m *MemoryStore) expired(key string) bool {
	deadline, ok := m.expiry[key]
	return ok && m.now().After(deadline)
}

func (m *MemoryStore) remove(key string) {
	delete(m.data, key)
	delete(m.expiry, key)
}
