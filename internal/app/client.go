// Package app implements the client facade: an explicit Client that issues catalog
// operations through the router, answers queries from the root field cache and
// applies the invalidation policy after successful mutations.
package app

import (
	"context"
	"encoding/json"
	"maps"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stashql/internal/adapters/metrics"   //nolint:depguard // Default when unset
	"go.trai.ch/stashql/internal/adapters/telemetry" //nolint:depguard // Default when unset
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/stashql/internal/engine/invalidation"
	"go.trai.ch/stashql/internal/graphql"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Client is the facade every caller goes through. Construct it once and share it;
// it is safe for concurrent use.
type Client struct {
	transport ports.Transport
	store     ports.CacheStore
	policy    *invalidation.Policy
	catalog   *graphql.Catalog
	logger    ports.Logger
	telemetry ports.Telemetry
	metrics   ports.Metrics
	timeout   time.Duration

	flight singleflight.Group

	// generation counts successful mutations and resets. A fetch only writes the cache when
	// no invalidation ran since it started, and only coalesces within one generation.
	genMu      sync.RWMutex
	generation uint64

	mu      sync.Mutex
	watches map[*Watch]struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds the detached network round trip of every operation.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithTelemetry records a vertex per operation.
func WithTelemetry(t ports.Telemetry) Option {
	return func(c *Client) {
		if t != nil {
			c.telemetry = t
		}
	}
}

// WithMetrics records operation counters.
func WithMetrics(m ports.Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New creates a Client. transport is normally a *router.Router.
func New(
	transport ports.Transport,
	store ports.CacheStore,
	policy *invalidation.Policy,
	catalog *graphql.Catalog,
	logger ports.Logger,
	opts ...Option,
) *Client {
	c := &Client{
		transport: transport,
		store:     store,
		policy:    policy,
		catalog:   catalog,
		logger:    logger,
		telemetry: telemetry.NewNoOp(),
		metrics:   metrics.Noop{},
		watches:   make(map[*Watch]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOption adjusts a single query.
type RequestOption func(*domain.Request)

// WithFetchPolicy sets how the query uses the cache.
func WithFetchPolicy(p domain.FetchPolicy) RequestOption {
	return func(r *domain.Request) { r.FetchPolicy = p }
}

// WithErrorPolicy sets whether GraphQL errors fail the query.
func WithErrorPolicy(p domain.ErrorPolicy) RequestOption {
	return func(r *domain.Request) { r.ErrorPolicy = p }
}

// Catalog returns the operations the client can issue.
func (c *Client) Catalog() *graphql.Catalog {
	return c.catalog
}

// Policy returns the invalidation policy.
func (c *Client) Policy() *invalidation.Policy {
	return c.policy
}

func (c *Client) lookup(name string, kind domain.OperationKind) (*domain.Operation, error) {
	op, err := c.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if op.Kind != kind {
		return nil, zerr.With(zerr.With(domain.ErrWrongOperationKind, "operation", name), "kind", op.Kind.String())
	}
	return op, nil
}

// Query runs a catalog query. With the default CacheFirst policy it is answered
// from the cache when every root field is present.
func (c *Client) Query(ctx context.Context, name string, vars map[string]any, opts ...RequestOption) (*domain.Result, error) {
	op, err := c.lookup(name, domain.OperationQuery)
	if err != nil {
		return nil, err
	}
	req := domain.Request{Operation: op, Variables: vars}
	for _, opt := range opts {
		opt(&req)
	}
	return c.query(ctx, req)
}

func (c *Client) query(ctx context.Context, req domain.Request) (*domain.Result, error) {
	name := req.Operation.Name
	start := time.Now()
	ctx, vertex := c.telemetry.Record(ctx, name)

	keys, err := c.cacheKeys(req)
	if err != nil {
		return nil, c.finish(vertex, req.Operation, start, err)
	}

	if keys != nil && req.FetchPolicy == domain.CacheFirst {
		if res, ok := c.fromCache(req.Operation, keys); ok {
			c.metrics.CacheLookup(name, true)
			vertex.Cached()
			c.metrics.ObserveOperation(name, domain.OperationQuery, domain.OperationStatusCached, time.Since(start))
			vertex.Complete(nil)
			return res, nil
		}
		c.metrics.CacheLookup(name, false)
	}

	gen := c.currentGeneration()
	res, err := c.await(ctx, flightKey(req, gen), func(ctx context.Context) (*domain.Result, error) {
		res, err := c.fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		if res.HasErrors() {
			if req.ErrorPolicy == domain.ErrorPolicyIgnore {
				res.Errors = nil
				return res, nil
			}
			return nil, zerr.With(res.Err(), "operation", name)
		}
		c.remember(keys, req.Operation, res, gen)
		return res, nil
	})
	return res, c.finish(vertex, req.Operation, start, err)
}

// Mutate runs a catalog mutation. On success the mutation's invalidation rule is
// applied and affected watches are refetched before Mutate returns; a failed
// mutation leaves the cache untouched. If ctx ends first the caller gets ctx.Err()
// while the mutation and its cache effects still complete.
func (c *Client) Mutate(ctx context.Context, name string, vars map[string]any) (*domain.Result, error) {
	op, err := c.lookup(name, domain.OperationMutation)
	if err != nil {
		return nil, err
	}
	req := domain.Request{Operation: op, Variables: vars, FetchPolicy: domain.NoCache}

	start := time.Now()
	ctx, vertex := c.telemetry.Record(ctx, name)

	res, err := c.await(ctx, "", func(ctx context.Context) (*domain.Result, error) {
		res, err := c.fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		if res.HasErrors() {
			return nil, zerr.With(res.Err(), "operation", name)
		}
		c.invalidate(ctx, name)
		return res, nil
	})
	return res, c.finish(vertex, op, start, err)
}

// invalidate applies the rule of a successful mutation and refetches what it
// touched. Failures are reported, never returned: the server already committed.
func (c *Client) invalidate(ctx context.Context, mutation string) {
	c.bumpGeneration()
	removed, err := c.policy.Invalidate(mutation)
	if err != nil {
		c.metrics.InvalidationFailed(mutation)
		c.logger.Error(zerr.With(err, "mutation", mutation))
	} else {
		c.metrics.Invalidated(mutation, len(removed))
		if len(removed) > 0 {
			c.logger.Debug(mutation + ": evicted " + strconv.Itoa(len(removed)) + " cache keys")
		}
	}

	affected := c.affectedWatches(removed, c.policy.Refetch(mutation))
	if err := c.refetchAll(ctx, affected); err != nil {
		c.logger.Warn(mutation + ": refetch after invalidation failed: " + err.Error())
	}
}

// Subscribe starts a catalog subscription on the stream transport. The returned
// handle is owned by the caller and must be closed.
func (c *Client) Subscribe(ctx context.Context, name string, vars map[string]any) (*Subscription, error) {
	op, err := c.lookup(name, domain.OperationSubscription)
	if err != nil {
		return nil, err
	}
	ctx, vertex := c.telemetry.Record(ctx, name)
	resp, err := c.transport.Request(ctx, domain.Request{Operation: op, Variables: vars, FetchPolicy: domain.NoCache})
	if err != nil {
		vertex.Complete(err)
		c.metrics.ObserveOperation(name, op.Kind, domain.OperationStatusFailed, 0)
		return nil, zerr.With(err, "operation", name)
	}
	return newSubscription(name, resp, vertex), nil
}

// ResetStore empties the cache and refetches every live watch.
func (c *Client) ResetStore(ctx context.Context) error {
	c.bumpGeneration()
	if err := c.store.Clear(); err != nil {
		return zerr.Wrap(err, "failed to clear cache")
	}
	return c.refetchAll(ctx, c.activeWatches())
}

// Close closes every watch. Transports and the store are owned by the caller.
func (c *Client) Close() {
	for _, w := range c.activeWatches() {
		w.Close()
	}
}

// skip records an operation the client did not send, as for detail lookups of an
// entity that does not exist yet.
func (c *Client) skip(name string) *domain.Result {
	c.metrics.ObserveOperation(name, domain.OperationQuery, domain.OperationStatusSkipped, 0)
	return &domain.Result{Data: map[string]json.RawMessage{}}
}

// listFilter falls back to the default filter of mode when the caller passes none.
func listFilter(filter ports.FilterModel, mode domain.FilterMode) ports.FilterModel {
	if filter == nil {
		return domain.NewListFilter(mode)
	}
	return filter
}

func (c *Client) cacheKeys(req domain.Request) ([]string, error) {
	if req.FetchPolicy == domain.NoCache || !req.Operation.Cacheable() {
		return nil, nil
	}
	keys := make([]string, len(req.Operation.RootFields))
	for i, f := range req.Operation.RootFields {
		k, err := f.CacheKey(req.Variables)
		if err != nil {
			return nil, zerr.With(err, "operation", req.Operation.Name)
		}
		keys[i] = k
	}
	return keys, nil
}

func (c *Client) fromCache(op *domain.Operation, keys []string) (*domain.Result, bool) {
	data := make(map[string]json.RawMessage, len(keys))
	for i, key := range keys {
		entry, ok, err := c.store.Get(key)
		if err != nil {
			c.logger.Warn("cache read failed: " + err.Error())
			return nil, false
		}
		if !ok {
			return nil, false
		}
		data[op.RootFields[i].ResponseKey] = entry.Value
	}
	return &domain.Result{Data: data, FromCache: true}, true
}

func (c *Client) bumpGeneration() {
	c.genMu.Lock()
	c.generation++
	c.genMu.Unlock()
}

func (c *Client) currentGeneration() uint64 {
	c.genMu.RLock()
	defer c.genMu.RUnlock()
	return c.generation
}

// remember writes each root field of a successful result under its key, unless a
// mutation invalidated the cache after the fetch started.
func (c *Client) remember(keys []string, op *domain.Operation, res *domain.Result, gen uint64) {
	c.genMu.RLock()
	defer c.genMu.RUnlock()
	if c.generation != gen {
		return
	}
	now := time.Now()
	for i, key := range keys {
		raw, ok := res.Data[op.RootFields[i].ResponseKey]
		if !ok {
			continue
		}
		if err := c.store.Put(key, domain.CacheEntry{Value: raw, StoredAt: now}); err != nil {
			c.logger.Warn("cache write failed: " + err.Error())
		}
	}
}

func (c *Client) fetch(ctx context.Context, req domain.Request) (*domain.Result, error) {
	resp, err := c.transport.Request(ctx, req)
	if err != nil {
		return nil, zerr.With(err, "operation", req.Operation.Name)
	}
	defer resp.Close()

	if !resp.Next() {
		if err := resp.Err(); err != nil {
			return nil, zerr.With(err, "operation", req.Operation.Name)
		}
		return nil, zerr.With(domain.ErrEmptyResponse, "operation", req.Operation.Name)
	}
	res := resp.Get()
	return &res, nil
}

// await runs fn on a context detached from ctx's cancellation and bounded by the
// client timeout. Identical queries in flight share one round trip when flightKey
// is set. The caller stops waiting when ctx ends; fn does not.
func (c *Client) await(ctx context.Context, flightKey string, fn func(context.Context) (*domain.Result, error)) (*domain.Result, error) {
	work := func() (any, error) {
		dctx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			dctx, cancel = context.WithTimeout(dctx, c.timeout)
			defer cancel()
		}
		return fn(dctx)
	}

	var ch <-chan singleflight.Result
	if flightKey == "" {
		out := make(chan singleflight.Result, 1)
		go func() {
			v, err := work()
			out <- singleflight.Result{Val: v, Err: err}
		}()
		ch = out
	} else {
		ch = c.flight.DoChan(flightKey, work)
	}

	select {
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		res, _ := r.Val.(*domain.Result)
		if res == nil {
			return nil, domain.ErrEmptyResponse
		}
		cp := *res
		cp.Data = maps.Clone(res.Data)
		return &cp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) finish(vertex ports.Vertex, op *domain.Operation, start time.Time, err error) error {
	status := domain.OperationStatusCompleted
	if err != nil {
		status = domain.OperationStatusFailed
	}
	c.metrics.ObserveOperation(op.Name, op.Kind, status, time.Since(start))
	vertex.Complete(err)
	return err
}

// flightKey identifies identical queries: same operation, variables, policy and
// invalidation generation.
func flightKey(req domain.Request, gen uint64) string {
	vars, err := json.Marshal(req.Variables)
	if err != nil {
		return ""
	}
	h := xxhash.New()
	_, _ = h.WriteString(req.Operation.Name)
	_, _ = h.Write([]byte{0, byte(req.FetchPolicy), byte(req.ErrorPolicy), 0})
	_, _ = h.Write(vars)
	return strconv.FormatUint(h.Sum64(), 16) + "." + strconv.FormatUint(gen, 10)
}

func (c *Client) refetchAll(ctx context.Context, watches []*Watch) error {
	if len(watches) == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range watches {
		g.Go(func() error {
			_, err := w.refetch(ctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "refetch failed")
	}
	return nil
}
