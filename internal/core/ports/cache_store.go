package ports

import "go.trai.ch/stashql/internal/core/domain"

//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks

// CacheStore is a flat mapping from root field cache key to the last known result
// fragment. Entries live until they are deleted or the store is cleared.
type CacheStore interface {
	// Get returns the entry stored under key.
	Get(key string) (domain.CacheEntry, bool, error)
	// Put stores entry under key, replacing any previous entry.
	Put(key string, entry domain.CacheEntry) error
	// DeleteMatching removes every key accepted by any matcher and returns the removed keys.
	DeleteMatching(matchers []domain.KeyMatcher) ([]string, error)
	// Clear removes every entry.
	Clear() error
	// Keys returns the current keys in sorted order.
	Keys() ([]string, error)
	// Close releases the store. Later calls fail with domain.ErrStoreClosed.
	Close() error
}
