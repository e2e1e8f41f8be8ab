package rootfields_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/engine/rootfields"
)

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		doc  string
		kind domain.OperationKind
	}{
		{`query Stats { stats { scene_count } }`, domain.OperationQuery},
		{`mutation StopJob { stopJob }`, domain.OperationMutation},
		{`subscription MetadataUpdate { metadataUpdate }`, domain.OperationSubscription},
	}
	for _, tt := range tests {
		op, err := rootfields.Parse(tt.doc)
		require.NoError(t, err)
		assert.Equal(t, tt.kind, op.Kind, tt.doc)
		assert.Equal(t, tt.doc, op.Document)
	}
}

func TestParse_RootFieldsAndKeys(t *testing.T) {
	op, err := rootfields.Parse(`
		query FindPerformers($filter: FindFilterType, $performer_filter: PerformerFilterType) {
			list: findPerformers(filter: $filter, performer_filter: $performer_filter) { count }
			allTags { id }
			findScene(id: "7") { id }
		}`)
	require.NoError(t, err)
	require.Len(t, op.RootFields, 3)

	assert.Equal(t, "findPerformers", op.RootFields[0].Name)
	assert.Equal(t, "list", op.RootFields[0].ResponseKey)
	assert.Equal(t, "allTags", op.RootFields[1].ResponseKey)

	vars := map[string]any{
		"filter":           map[string]any{"q": "alice"},
		"performer_filter": map[string]any{},
	}
	key, err := op.RootFields[0].CacheKey(vars)
	require.NoError(t, err)
	assert.Equal(t, `findPerformers({"filter":{"q":"alice"},"performer_filter":{}})`, key)

	key, err = op.RootFields[1].CacheKey(vars)
	require.NoError(t, err)
	assert.Equal(t, "allTags", key)

	key, err = op.RootFields[2].CacheKey(nil)
	require.NoError(t, err)
	assert.Equal(t, `findScene({"id":"7"})`, key)
}

func TestParse_NestedVariable(t *testing.T) {
	op, err := rootfields.Parse(`query FindScenes($q: String) { findScenes(filter: {q: $q, per_page: 20}) { count } }`)
	require.NoError(t, err)
	key, err := op.RootFields[0].CacheKey(map[string]any{"q": "beach"})
	require.NoError(t, err)
	assert.Equal(t, `findScenes({"filter":{"per_page":20,"q":"beach"}})`, key)
}

func TestParse_FragmentAtRootDisablesCaching(t *testing.T) {
	op, err := rootfields.Parse(`query Mixed { ...RootBits } fragment RootBits on Query { stats { scene_count } }`)
	require.NoError(t, err)
	assert.Nil(t, op.RootFields)
	assert.False(t, op.Cacheable())
}

func TestParse_Errors(t *testing.T) {
	docs := []string{
		`query {`,
		`{ stats { scene_count } }`,
		`query A { stats { scene_count } } query B { version { version } }`,
		`fragment F on Query { stats { scene_count } }`,
	}
	for _, doc := range docs {
		_, err := rootfields.Parse(doc)
		if !errors.Is(err, domain.ErrInvalidOperation) {
			t.Errorf("%q: expected ErrInvalidOperation, got %v", doc, err)
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { rootfields.MustParse(`query {`) })
}
