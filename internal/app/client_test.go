package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/adapters/memstore"
	"go.trai.ch/stashql/internal/app"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/stashql/internal/core/ports/mocks"
	"go.trai.ch/stashql/internal/engine/invalidation"
	"go.trai.ch/stashql/internal/engine/router"
	"go.trai.ch/stashql/internal/graphql"
	"go.uber.org/mock/gomock"
)

// operation matches a domain.Request by operation name.
type operation string

func (o operation) Matches(x any) bool {
	req, ok := x.(domain.Request)
	return ok && req.Operation != nil && req.Operation.Name == string(o)
}

func (o operation) String() string { return "is operation " + string(o) }

type fixture struct {
	ctrl      *gomock.Controller
	transport *mocks.MockTransport
	store     *memstore.Store
	logger    *mocks.MockLogger
	client    *app.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		transport: mocks.NewMockTransport(ctrl),
		store:     memstore.NewStore(),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	catalog, err := graphql.Default()
	require.NoError(t, err)
	policy, err := invalidation.NewPolicy(f.store, graphql.Rules)
	require.NoError(t, err)

	f.client = app.New(f.transport, f.store, policy, catalog, f.logger)
	t.Cleanup(f.client.Close)
	return f
}

// respond builds a single-payload response.
func respond(ctrl *gomock.Controller, data string) *mocks.MockResponse {
	var res domain.Result
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		panic(err)
	}
	resp := mocks.NewMockResponse(ctrl)
	resp.EXPECT().Next().Return(true)
	resp.EXPECT().Get().Return(res)
	resp.EXPECT().Close()
	return resp
}

func (f *fixture) expect(name, data string) *gomock.Call {
	return f.transport.EXPECT().Request(gomock.Any(), operation(name)).
		DoAndReturn(func(context.Context, domain.Request) (ports.Response, error) {
			return respond(f.ctrl, data), nil
		})
}

func (f *fixture) keys(t *testing.T) []string {
	t.Helper()
	keys, err := f.store.Keys()
	require.NoError(t, err)
	return keys
}

func hasPrefix(keys []string, prefix string) bool {
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func performers() *domain.ListFilter {
	return domain.NewListFilter(domain.FilterModePerformers)
}

func TestClient_Query_CacheFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expect("FindPerformers", `{"data":{"findPerformers":{"count":1}}}`).Times(1)

	first, err := f.client.FindPerformers(ctx, performers(), domain.CacheFirst)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := f.client.FindPerformers(ctx, performers(), domain.CacheFirst)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.JSONEq(t, `{"count":1}`, string(second.Data["findPerformers"]))
}

func TestClient_Query_NoCacheBypassesStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expect("FindPerformers", `{"data":{"findPerformers":{"count":1}}}`).Times(2)

	for range 2 {
		res, err := f.client.FindPerformers(ctx, performers(), domain.NoCache)
		require.NoError(t, err)
		assert.False(t, res.FromCache)
	}
	assert.Empty(t, f.keys(t))
}

func TestClient_Query_NetworkOnlyStillWrites(t *testing.T) {
	f := newFixture(t)
	f.expect("Stats", `{"data":{"stats":{"scene_count":3}}}`)

	_, err := f.client.Query(context.Background(), "Stats", nil, app.WithFetchPolicy(domain.NetworkOnly))
	require.NoError(t, err)
	assert.Equal(t, []string{"stats"}, f.keys(t))
}

func TestClient_UpdatePerformerEvictsFindPerformers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Put("findStudios({})", domain.CacheEntry{Value: json.RawMessage(`{"count":0}`)}))

	gomock.InOrder(
		f.expect("FindPerformers", `{"data":{"findPerformers":{"count":1}}}`),
		f.expect("PerformerUpdate", `{"data":{"performerUpdate":{"id":"5","name":"Alice"}}}`),
		f.expect("FindPerformers", `{"data":{"findPerformers":{"count":1}}}`),
	)

	_, err := f.client.FindPerformers(ctx, performers(), domain.CacheFirst)
	require.NoError(t, err)
	require.True(t, hasPrefix(f.keys(t), "findPerformers("))

	_, err = f.client.UpdatePerformer(ctx, map[string]any{"id": "5", "name": "Alice"})
	require.NoError(t, err)

	keys := f.keys(t)
	assert.False(t, hasPrefix(keys, "findPerformers"), "every findPerformers key is evicted")
	assert.Contains(t, keys, "findStudios({})", "unrelated keys survive")

	// Read-your-own-writes: the next read goes to the transport.
	res, err := f.client.FindPerformers(ctx, performers(), domain.CacheFirst)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
}

func TestClient_ListHelpersDefaultNilFilter(t *testing.T) {
	type find func(*app.Client, ports.FilterModel) (*domain.Result, error)
	ctx := context.Background()
	tests := []struct {
		operation string
		field     string
		mode      domain.FilterMode
		find      find
	}{
		{"FindPerformers", "findPerformers", domain.FilterModePerformers, func(c *app.Client, f ports.FilterModel) (*domain.Result, error) {
			return c.FindPerformers(ctx, f, domain.CacheFirst)
		}},
		{"FindScenes", "findScenes", domain.FilterModeScenes, func(c *app.Client, f ports.FilterModel) (*domain.Result, error) {
			return c.FindScenes(ctx, f, domain.CacheFirst)
		}},
		{"FindSceneMarkers", "findSceneMarkers", domain.FilterModeSceneMarkers, func(c *app.Client, f ports.FilterModel) (*domain.Result, error) {
			return c.FindSceneMarkers(ctx, f, domain.CacheFirst)
		}},
		{"FindStudios", "findStudios", domain.FilterModeStudios, func(c *app.Client, f ports.FilterModel) (*domain.Result, error) {
			return c.FindStudios(ctx, f, domain.CacheFirst)
		}},
		{"FindMovies", "findMovies", domain.FilterModeMovies, func(c *app.Client, f ports.FilterModel) (*domain.Result, error) {
			return c.FindMovies(ctx, f, domain.CacheFirst)
		}},
		{"FindTags", "findTags", domain.FilterModeTags, func(c *app.Client, f ports.FilterModel) (*domain.Result, error) {
			return c.FindTags(ctx, f, domain.CacheFirst)
		}},
		{"FindGalleries", "findGalleries", domain.FilterModeGalleries, func(c *app.Client, f ports.FilterModel) (*domain.Result, error) {
			return c.FindGalleries(ctx, f, domain.CacheFirst)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			f := newFixture(t)
			f.expect(tt.operation, `{"data":{"`+tt.field+`":{"count":0}}}`)

			res, err := tt.find(f.client, nil)
			require.NoError(t, err)
			assert.False(t, res.FromCache)

			// A nil filter reads the same cache entry as the mode's default filter.
			res, err = tt.find(f.client, domain.NewListFilter(tt.mode))
			require.NoError(t, err)
			assert.True(t, res.FromCache)
		})
	}
}

func TestClient_Mutate_StripsNullInput(t *testing.T) {
	f := newFixture(t)
	f.transport.EXPECT().Request(gomock.Any(), operation("PerformerUpdate")).
		DoAndReturn(func(_ context.Context, req domain.Request) (ports.Response, error) {
			input, _ := req.Variables["input"].(map[string]any)
			assert.Equal(t, map[string]any{"id": "5"}, input)
			return respond(f.ctrl, `{"data":{"performerUpdate":{"id":"5"}}}`), nil
		})

	_, err := f.client.UpdatePerformer(context.Background(), map[string]any{"id": "5", "gender": nil})
	require.NoError(t, err)
}

func TestClient_Mutate_GraphQLErrorKeepsCache(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Put("findPerformers({})", domain.CacheEntry{Value: json.RawMessage(`{}`)}))
	f.expect("PerformerUpdate", `{"data":null,"errors":[{"message":"performer not found"}]}`)

	_, err := f.client.UpdatePerformer(context.Background(), map[string]any{"id": "404"})
	assert.ErrorIs(t, err, domain.ErrOperationFailed)
	assert.Contains(t, f.keys(t), "findPerformers({})", "failed mutations never invalidate")
}

func TestClient_Mutate_TransportErrorKeepsCache(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Put("findScenes({})", domain.CacheEntry{Value: json.RawMessage(`{}`)}))
	f.transport.EXPECT().Request(gomock.Any(), operation("SceneUpdate")).Return(nil, domain.ErrTransport)

	_, err := f.client.UpdateScene(context.Background(), map[string]any{"id": "1"})
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, f.keys(t), "findScenes({})")
}

func TestClient_Mutate_EmptyResponse(t *testing.T) {
	f := newFixture(t)
	resp := mocks.NewMockResponse(f.ctrl)
	resp.EXPECT().Next().Return(false)
	resp.EXPECT().Err().Return(nil)
	resp.EXPECT().Close()
	f.transport.EXPECT().Request(gomock.Any(), operation("StopJob")).Return(resp, nil)

	_, err := f.client.StopJob(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestClient_Mutate_InvalidationFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	store := mocks.NewMockCacheStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	m := mocks.NewMockMetrics(ctrl)

	catalog, err := graphql.Default()
	require.NoError(t, err)
	policy, err := invalidation.NewPolicy(store, graphql.Rules)
	require.NoError(t, err)
	client := app.New(transport, store, policy, catalog, logger, app.WithMetrics(m))

	transport.EXPECT().Request(gomock.Any(), operation("TagCreate")).Return(respond(ctrl, `{"data":{"tagCreate":{"id":"1"}}}`), nil)
	store.EXPECT().DeleteMatching(gomock.Any()).Return(nil, domain.ErrStoreClosed)
	m.EXPECT().InvalidationFailed("TagCreate")
	m.EXPECT().ObserveOperation("TagCreate", domain.OperationMutation, domain.OperationStatusCompleted, gomock.Any())
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrInvalidationFailed)
	})

	res, err := client.CreateTag(context.Background(), map[string]any{"name": "outdoor"})
	require.NoError(t, err, "the mutation committed, so the caller sees success")
	assert.JSONEq(t, `{"id":"1"}`, string(res.Data["tagCreate"]))
}

func TestClient_Mutate_CancelledCallerStillInvalidates(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Put(`findStudio({"id":"2"})`, domain.CacheEntry{Value: json.RawMessage(`{}`)}))

		release := make(chan struct{})
		f.transport.EXPECT().Request(gomock.Any(), operation("StudioUpdate")).
			DoAndReturn(func(ctx context.Context, _ domain.Request) (ports.Response, error) {
				<-release
				// The round trip runs detached from the caller.
				assert.NoError(t, ctx.Err())
				return respond(f.ctrl, `{"data":{"studioUpdate":{"id":"2"}}}`), nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := f.client.UpdateStudio(ctx, map[string]any{"id": "2"})
			done <- err
		}()

		synctest.Wait()
		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
		assert.Contains(t, f.keys(t), `findStudio({"id":"2"})`, "nothing is evicted before success")

		close(release)
		synctest.Wait()
		assert.NotContains(t, f.keys(t), `findStudio({"id":"2"})`)
	})
}

func TestClient_ReadAfterMutationIgnoresEarlierFetch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		release := make(chan struct{})
		var calls atomic.Int32
		f.transport.EXPECT().Request(gomock.Any(), operation("FindPerformers")).
			DoAndReturn(func(context.Context, domain.Request) (ports.Response, error) {
				if calls.Add(1) == 1 {
					<-release
					return respond(f.ctrl, `{"data":{"findPerformers":{"count":1,"name":"Bob"}}}`), nil
				}
				return respond(f.ctrl, `{"data":{"findPerformers":{"count":1,"name":"Alice"}}}`), nil
			}).Times(2)
		f.expect("PerformerUpdate", `{"data":{"performerUpdate":{"id":"5","name":"Alice"}}}`)

		// A read started before the mutation is still waiting on the server.
		earlier := make(chan *domain.Result, 1)
		go func() {
			res, err := f.client.FindPerformers(ctx, performers(), domain.CacheFirst)
			assert.NoError(t, err)
			earlier <- res
		}()
		synctest.Wait()

		_, err := f.client.UpdatePerformer(ctx, map[string]any{"id": "5", "name": "Alice"})
		require.NoError(t, err)

		fresh, err := f.client.FindPerformers(ctx, performers(), domain.CacheFirst)
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":1,"name":"Alice"}`, string(fresh.Data["findPerformers"]), "no coalescing across a mutation")

		close(release)
		assert.JSONEq(t, `{"count":1,"name":"Bob"}`, string((<-earlier).Data["findPerformers"]))
		synctest.Wait()

		cached, err := f.client.FindPerformers(ctx, performers(), domain.CacheFirst)
		require.NoError(t, err)
		assert.True(t, cached.FromCache)
		assert.JSONEq(t, `{"count":1,"name":"Alice"}`, string(cached.Data["findPerformers"]), "the earlier fetch must not overwrite the cache")
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestClient_Query_CoalescesIdenticalRequests(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		release := make(chan struct{})
		f.transport.EXPECT().Request(gomock.Any(), operation("Stats")).
			DoAndReturn(func(context.Context, domain.Request) (ports.Response, error) {
				<-release
				return respond(f.ctrl, `{"data":{"stats":{"scene_count":7}}}`), nil
			}).Times(1)

		var wg sync.WaitGroup
		results := make([]*domain.Result, 2)
		for i := range results {
			wg.Go(func() {
				res, err := f.client.Stats(context.Background())
				assert.NoError(t, err)
				results[i] = res
			})
		}

		synctest.Wait()
		close(release)
		wg.Wait()

		for _, res := range results {
			require.NotNil(t, res)
			assert.JSONEq(t, `{"scene_count":7}`, string(res.Data["stats"]))
		}
	})
}

func TestClient_OperationKindChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.Query(ctx, "PerformerUpdate", nil)
	assert.ErrorIs(t, err, domain.ErrWrongOperationKind)

	_, err = f.client.Mutate(ctx, "FindScenes", nil)
	assert.ErrorIs(t, err, domain.ErrWrongOperationKind)

	_, err = f.client.Subscribe(ctx, "JobStatus", nil)
	assert.ErrorIs(t, err, domain.ErrWrongOperationKind)

	_, err = f.client.Query(ctx, "FindEverything", nil)
	assert.ErrorIs(t, err, domain.ErrOperationNotFound)
}

func TestClient_DetailHelpersSkipNew(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, find := range []func(context.Context, string) (*domain.Result, error){
		f.client.FindPerformer, f.client.FindStudio, f.client.FindMovie, f.client.FindTag,
	} {
		res, err := find(ctx, "new")
		require.NoError(t, err)
		assert.Empty(t, res.Data)
	}
}

func TestClient_LatestVersionIgnoresErrors(t *testing.T) {
	f := newFixture(t)
	f.expect("LatestVersion", `{"data":{"latestversion":null},"errors":[{"message":"rate limited"}]}`)

	res, err := f.client.LatestVersion(context.Background())
	require.NoError(t, err)
	assert.False(t, res.HasErrors())
	assert.Empty(t, f.keys(t), "results with errors are not cached")
}

func TestClient_SubscribeJobStatusUsesStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	request := mocks.NewMockTransport(ctrl)
	stream := mocks.NewMockTransport(ctrl)
	store := memstore.NewStore()

	catalog, err := graphql.Default()
	require.NoError(t, err)
	policy, err := invalidation.NewPolicy(store, graphql.Rules)
	require.NoError(t, err)
	client := app.New(router.New(request, stream), store, policy, catalog, mocks.NewMockLogger(ctrl))

	resp := mocks.NewMockResponse(ctrl)
	gomock.InOrder(
		resp.EXPECT().Next().Return(true),
		resp.EXPECT().Get().Return(domain.Result{Data: map[string]json.RawMessage{
			"metadataUpdate": json.RawMessage(`{"status":"Scanning","progress":0.25}`),
		}}),
		resp.EXPECT().Next().Return(false),
	)
	resp.EXPECT().Err().Return(nil).AnyTimes()
	resp.EXPECT().Close()
	stream.EXPECT().Request(gomock.Any(), operation("MetadataUpdate")).Return(resp, nil)

	sub, err := client.SubscribeJobStatus(context.Background())
	require.NoError(t, err)
	defer sub.Close()

	require.True(t, sub.Next())
	var status struct {
		Status   string  `json:"status"`
		Progress float64 `json:"progress"`
	}
	require.NoError(t, sub.Decode("metadataUpdate", &status))
	assert.Equal(t, "Scanning", status.Status)
	assert.False(t, sub.Next())
	assert.NoError(t, sub.Err())
	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys, "subscriptions never touch the cache")
}

func TestClient_ResetStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gomock.InOrder(
		f.expect("Configuration", `{"data":{"configuration":{"general":{"stashes":[]}}}}`),
		f.expect("Configuration", `{"data":{"configuration":{"general":{"stashes":["/media"]}}}}`),
	)

	w, err := f.client.WatchConfiguration(ctx)
	require.NoError(t, err)
	require.NoError(t, f.store.Put("stats", domain.CacheEntry{Value: json.RawMessage(`{}`)}))

	require.NoError(t, f.client.ResetStore(ctx))
	assert.Equal(t, []string{"configuration"}, f.keys(t), "only the refetched watch is cached again")
	assert.JSONEq(t, `{"general":{"stashes":["/media"]}}`, string(w.Current().Data["configuration"]))
}

func TestClient_RoutingNeverMisroutes(t *testing.T) {
	catalog, err := graphql.Default()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	request := mocks.NewMockTransport(ctrl)
	stream := mocks.NewMockTransport(ctrl)
	rt := router.New(request, stream)

	for _, op := range catalog.Operations() {
		got, err := rt.Route(op)
		require.NoError(t, err, op.Name)
		want := ports.Transport(request)
		if op.Kind == domain.OperationSubscription {
			want = stream
		}
		assert.Same(t, want, got, fmt.Sprintf("%s (%s)", op.Name, op.Kind))
	}
}

func TestClient_QueryTransportError(t *testing.T) {
	f := newFixture(t)
	boom := errors.Join(domain.ErrTransport, errors.New("connection refused"))
	f.transport.EXPECT().Request(gomock.Any(), operation("Version")).Return(nil, boom)

	_, err := f.client.Version(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Empty(t, f.keys(t))
}
