package domain

import (
	"encoding/json"
	"regexp"
	"time"
)

// CacheEntry is the last known result fragment of one root field.
type CacheEntry struct {
	Key      string
	Value    json.RawMessage
	StoredAt time.Time
}

// KeyMatcher selects cache keys.
type KeyMatcher interface {
	Match(key string) bool
	String() string
}

// PrefixMatcher matches keys that start with a literal prefix.
type PrefixMatcher struct {
	prefix string
	re     *regexp.Regexp
}

// NewPrefixMatcher compiles prefix into an anchored matcher. Regexp metacharacters in
// the prefix are matched literally, so "findScene(" only matches detail keys.
func NewPrefixMatcher(prefix string) (*PrefixMatcher, error) {
	if prefix == "" {
		return nil, ErrInvalidPrefix
	}
	re, err := regexp.Compile("^" + regexp.QuoteMeta(prefix))
	if err != nil {
		return nil, err
	}
	return &PrefixMatcher{prefix: prefix, re: re}, nil
}

// MustPrefixMatchers compiles a list of prefixes and panics on an empty one. It is
// meant for static tables built at process start.
func MustPrefixMatchers(prefixes ...string) []KeyMatcher {
	matchers := make([]KeyMatcher, 0, len(prefixes))
	for _, p := range prefixes {
		m, err := NewPrefixMatcher(p)
		if err != nil {
			panic(err)
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// Match reports whether key starts with the prefix.
func (m *PrefixMatcher) Match(key string) bool {
	return m.re.MatchString(key)
}

// Prefix returns the literal prefix.
func (m *PrefixMatcher) Prefix() string {
	return m.prefix
}

func (m *PrefixMatcher) String() string {
	return m.prefix
}
