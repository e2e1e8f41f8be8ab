package invalidation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/adapters/memstore"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports/mocks"
	"go.trai.ch/stashql/internal/engine/invalidation"
	"go.trai.ch/stashql/internal/graphql"
	"go.uber.org/mock/gomock"
)

var performerRule = domain.InvalidationRule{
	Mutation: "PerformerUpdate",
	Prefixes: []string{"findPerformers", "findPerformer(", "allPerformers", "findScenes"},
	Affects:  []domain.Entity{domain.EntityPerformer},
}

func seed(t *testing.T, keys ...string) *memstore.Store {
	t.Helper()
	store := memstore.NewStore()
	for _, k := range keys {
		require.NoError(t, store.Put(k, domain.CacheEntry{Value: json.RawMessage(`{}`)}))
	}
	return store
}

func TestPolicy_Invalidate(t *testing.T) {
	store := seed(t,
		"findPerformers({})",
		`findPerformer({"id":"5"})`,
		"findStudios({})",
		"allTags",
	)
	policy, err := invalidation.NewPolicy(store, []domain.InvalidationRule{performerRule})
	require.NoError(t, err)

	removed, err := policy.Invalidate("PerformerUpdate")
	require.NoError(t, err)
	assert.Equal(t, []string{`findPerformer({"id":"5"})`, "findPerformers({})"}, removed)

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"allTags", "findStudios({})"}, keys, "keys outside the rule must survive")
}

func TestPolicy_CatalogRulesEvictExactlyCoveredFields(t *testing.T) {
	for _, rule := range graphql.Rules {
		t.Run(rule.Mutation, func(t *testing.T) {
			var all, evicted, survivors []string
			for _, read := range graphql.ReadDependencies {
				key := read.Field + "({})"
				all = append(all, key)
				hit := false
				for _, prefix := range rule.Prefixes {
					if invalidation.Covers(prefix, read.Field) {
						hit = true
						break
					}
				}
				if hit {
					evicted = append(evicted, key)
				} else {
					survivors = append(survivors, key)
				}
			}

			store := seed(t, all...)
			policy, err := invalidation.NewPolicy(store, graphql.Rules)
			require.NoError(t, err)

			removed, err := policy.Invalidate(rule.Mutation)
			require.NoError(t, err)
			assert.ElementsMatch(t, evicted, removed)

			keys, err := store.Keys()
			require.NoError(t, err)
			assert.ElementsMatch(t, survivors, keys)
		})
	}
}

func TestPolicy_UnknownMutationEvictsNothing(t *testing.T) {
	store := seed(t, "findPerformers({})")
	policy, err := invalidation.NewPolicy(store, []domain.InvalidationRule{performerRule})
	require.NoError(t, err)

	removed, err := policy.Invalidate("MetadataScan")
	require.NoError(t, err)
	assert.Empty(t, removed)

	keys, _ := store.Keys()
	assert.Len(t, keys, 1)
}

func TestPolicy_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCacheStore(ctrl)
	store.EXPECT().DeleteMatching(gomock.Len(4)).Return(nil, domain.ErrStoreClosed)

	policy, err := invalidation.NewPolicy(store, []domain.InvalidationRule{performerRule})
	require.NoError(t, err)

	_, err = policy.Invalidate("PerformerUpdate")
	if !errors.Is(err, domain.ErrInvalidationFailed) {
		t.Fatalf("expected ErrInvalidationFailed, got %v", err)
	}
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
}

func TestNewPolicy_RejectsBadTables(t *testing.T) {
	store := memstore.NewStore()

	_, err := invalidation.NewPolicy(store, []domain.InvalidationRule{performerRule, performerRule})
	assert.Error(t, err)

	_, err = invalidation.NewPolicy(store, []domain.InvalidationRule{{Mutation: "X", Prefixes: []string{""}}})
	assert.ErrorIs(t, err, domain.ErrInvalidPrefix)
}

func TestPolicy_RulesAndRefetch(t *testing.T) {
	tagRule := domain.InvalidationRule{Mutation: "TagCreate", Prefixes: []string{"allTags"}, Refetch: []string{"AllTags"}}
	policy, err := invalidation.NewPolicy(memstore.NewStore(), []domain.InvalidationRule{tagRule, performerRule})
	require.NoError(t, err)

	rules := policy.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "PerformerUpdate", rules[0].Mutation)
	assert.Equal(t, []string{"AllTags"}, policy.Refetch("TagCreate"))
	assert.Nil(t, policy.Refetch("PerformerUpdate"))

	_, ok := policy.Rule("TagCreate")
	assert.True(t, ok)
}
