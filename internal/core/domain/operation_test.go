package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/core/domain"
)

func variableArg(name, variable string) domain.Argument {
	return domain.Argument{
		Name: name,
		Resolve: func(vars map[string]any) (any, error) {
			return vars[variable], nil
		},
	}
}

func TestRootField_CacheKey(t *testing.T) {
	bare := domain.RootField{Name: "allTags", ResponseKey: "allTags"}
	key, err := bare.CacheKey(nil)
	require.NoError(t, err)
	assert.Equal(t, "allTags", key)

	withArgs := domain.RootField{
		Name:        "findPerformers",
		ResponseKey: "findPerformers",
		Arguments: []domain.Argument{
			variableArg("performer_filter", "pf"),
			variableArg("filter", "f"),
		},
	}
	key, err = withArgs.CacheKey(map[string]any{
		"f":  map[string]any{"per_page": 40, "page": 1},
		"pf": map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, `findPerformers({"filter":{"page":1,"per_page":40},"performer_filter":{}})`, key)
}

func TestRootField_CacheKey_OmitsNullArguments(t *testing.T) {
	f := domain.RootField{
		Name:        "findScenes",
		ResponseKey: "findScenes",
		Arguments: []domain.Argument{
			variableArg("filter", "f"),
			variableArg("scene_filter", "sf"),
			variableArg("scene_ids", "ids"),
		},
	}

	key, err := f.CacheKey(map[string]any{"f": nil, "sf": map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, `findScenes({"scene_filter":{}})`, key)

	omitted, err := f.CacheKey(map[string]any{"sf": map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, key, omitted, "explicit null and omitted variable share a key")

	key, err = f.CacheKey(nil)
	require.NoError(t, err)
	assert.Equal(t, "findScenes({})", key)
}

func TestRootField_CacheKey_ResolveError(t *testing.T) {
	f := domain.RootField{
		Name: "findScene",
		Arguments: []domain.Argument{{
			Name:    "id",
			Resolve: func(map[string]any) (any, error) { return nil, errors.New("boom") },
		}},
	}
	_, err := f.CacheKey(nil)
	if !errors.Is(err, domain.ErrInvalidCacheKey) {
		t.Fatalf("expected ErrInvalidCacheKey, got %v", err)
	}
}

func TestResult_Err(t *testing.T) {
	ok := &domain.Result{}
	require.NoError(t, ok.Err())

	failed := &domain.Result{Errors: []domain.GraphQLError{{Message: "nope"}, {Message: "again"}}}
	require.True(t, failed.HasErrors())
	assert.ErrorIs(t, failed.Err(), domain.ErrOperationFailed)
}

func TestResult_Decode(t *testing.T) {
	res := &domain.Result{Data: map[string]json.RawMessage{
		"findPerformer": json.RawMessage(`{"id":"5","name":"Alice"}`),
	}}
	var p struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, res.Decode("findPerformer", &p))
	assert.Equal(t, "Alice", p.Name)
	assert.Error(t, res.Decode("findScene", &p))

	var all map[string]map[string]string
	require.NoError(t, res.DecodeAll(&all))
	assert.Equal(t, "5", all["findPerformer"]["id"])
}

func TestOperation_Cacheable(t *testing.T) {
	fields := []domain.RootField{{Name: "stats", ResponseKey: "stats"}}
	assert.True(t, (&domain.Operation{Kind: domain.OperationQuery, RootFields: fields}).Cacheable())
	assert.False(t, (&domain.Operation{Kind: domain.OperationMutation, RootFields: fields}).Cacheable())
	assert.False(t, (&domain.Operation{Kind: domain.OperationQuery}).Cacheable())
}

func TestPrefixMatcher(t *testing.T) {
	m, err := domain.NewPrefixMatcher("findScene(")
	require.NoError(t, err)
	assert.True(t, m.Match(`findScene({"id":"1"})`))
	assert.False(t, m.Match(`findScenes({})`))
	assert.False(t, m.Match(`xfindScene({})`))

	_, err = domain.NewPrefixMatcher("")
	assert.ErrorIs(t, err, domain.ErrInvalidPrefix)
}

func TestListFilter(t *testing.T) {
	f := domain.NewListFilter(domain.FilterModePerformers)
	f.Query = "alice"
	c := domain.NewGenderCriterion()
	c.Value = "Female"
	require.NoError(t, f.AddCriterion(c))

	assert.Equal(t, map[string]any{"q": "alice", "page": 1, "per_page": 40, "direction": "ASC"}, f.FindFilter())
	assert.Equal(t, map[string]any{"gender": map[string]any{"value": "FEMALE", "modifier": "EQUALS"}}, f.PerformerFilter())
	assert.Empty(t, f.SceneFilter())
	assert.Empty(t, f.SceneMarkerFilter())

	bad := domain.NewGenderCriterion()
	bad.Value = "Robot"
	assert.ErrorIs(t, f.AddCriterion(bad), domain.ErrUnknownGender)
	assert.Len(t, f.Criteria(), 1)
}

func TestParseFetchPolicy(t *testing.T) {
	for _, p := range []domain.FetchPolicy{domain.CacheFirst, domain.NetworkOnly, domain.NoCache} {
		got, err := domain.ParseFetchPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := domain.ParseFetchPolicy("cache-and-network")
	assert.Error(t, err)
}
