// Package memstore implements the in-process root query cache.
package memstore

import (
	"sort"
	"sync"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheStore on a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
	closed  bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]domain.CacheEntry),
	}
}

// Get retrieves the entry stored under key.
func (s *Store) Get(key string) (domain.CacheEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return domain.CacheEntry{}, false, domain.ErrStoreClosed
	}
	entry, ok := s.entries[key]
	return entry, ok, nil
}

// Put stores the entry, overwriting any previous one.
func (s *Store) Put(key string, entry domain.CacheEntry) error {
	if key == "" {
		return zerr.With(domain.ErrInvalidCacheKey, "reason", "empty key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}
	entry.Key = key
	s.entries[key] = entry
	return nil
}

// DeleteMatching scans every key once and removes those accepted by any matcher.
// The removed keys are returned sorted.
func (s *Store) DeleteMatching(matchers []domain.KeyMatcher) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	var removed []string
	for key := range s.entries {
		for _, m := range matchers {
			if m.Match(key) {
				delete(s.entries, key)
				removed = append(removed, key)
				break
			}
		}
	}
	sort.Strings(removed)
	return removed, nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}
	s.entries = make(map[string]domain.CacheEntry)
	return nil
}

// Keys returns the current keys sorted.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close drops all entries. Further calls fail with domain.ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.entries = nil
	return nil
}
