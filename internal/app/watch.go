package app

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/stashql/internal/core/domain"
)

// Watch is a live query. It is refetched when a mutation evicts one of its cache
// keys or names its operation for refetch, and publishes each new result on
// Updates. Close it when done.
type Watch struct {
	c    *Client
	req  domain.Request
	keys []string

	updates chan *domain.Result

	mu      sync.Mutex
	current *domain.Result
	closed  bool
}

// Watch runs the query once and keeps it live.
func (c *Client) Watch(ctx context.Context, name string, vars map[string]any, opts ...RequestOption) (*Watch, error) {
	op, err := c.lookup(name, domain.OperationQuery)
	if err != nil {
		return nil, err
	}
	req := domain.Request{Operation: op, Variables: vars}
	for _, opt := range opts {
		opt(&req)
	}

	keys, err := c.cacheKeys(domain.Request{Operation: op, Variables: vars})
	if err != nil {
		return nil, err
	}

	res, err := c.query(ctx, req)
	if err != nil {
		return nil, err
	}

	w := &Watch{
		c:       c,
		req:     req,
		keys:    keys,
		updates: make(chan *domain.Result, 1),
		current: res,
	}
	c.mu.Lock()
	c.watches[w] = struct{}{}
	c.mu.Unlock()
	return w, nil
}

// Name returns the watched operation name.
func (w *Watch) Name() string {
	return w.req.Operation.Name
}

// Current returns the latest result.
func (w *Watch) Current() *domain.Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Updates delivers results after the initial one. Only the latest undelivered
// result is kept.
func (w *Watch) Updates() <-chan *domain.Result {
	return w.updates
}

// Refetch queries the server again, bypassing cached data.
func (w *Watch) Refetch(ctx context.Context) (*domain.Result, error) {
	return w.refetch(ctx)
}

func (w *Watch) refetch(ctx context.Context) (*domain.Result, error) {
	req := w.req
	if req.FetchPolicy == domain.CacheFirst {
		req.FetchPolicy = domain.NetworkOnly
	}
	res, err := w.c.query(ctx, req)
	if err != nil {
		return nil, err
	}
	w.publish(res)
	return res, nil
}

func (w *Watch) publish(res *domain.Result) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.current = res
	select {
	case w.updates <- res:
	default:
		// Replace the stale undelivered result.
		select {
		case <-w.updates:
		default:
		}
		w.updates <- res
	}
}

// Close stops the watch and closes Updates.
func (w *Watch) Close() {
	w.c.mu.Lock()
	delete(w.c.watches, w)
	w.c.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.updates)
}

// affects reports whether an eviction or refetch list concerns the watch.
func (w *Watch) affects(removed, refetch []string) bool {
	if slices.Contains(refetch, w.req.Operation.Name) {
		return true
	}
	for _, k := range w.keys {
		if slices.Contains(removed, k) {
			return true
		}
	}
	return false
}

func (c *Client) affectedWatches(removed, refetch []string) []*Watch {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*Watch
	for w := range c.watches {
		if w.affects(removed, refetch) {
			out = append(out, w)
		}
	}
	return out
}

func (c *Client) activeWatches() []*Watch {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Watch, 0, len(c.watches))
	for w := range c.watches {
		out = append(out, w)
	}
	return out
}
