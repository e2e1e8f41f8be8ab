// Package httptransport carries queries and mutations as GraphQL-over-HTTP POSTs.
package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/zerr"
)

const maxResponseBytes = 64 << 20

// Transport implements ports.Transport with one POST per operation.
type Transport struct {
	endpoint string
	client   *http.Client
	header   http.Header
}

// Option configures a Transport.
type Option func(*Transport)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) {
		if c != nil {
			t.client = c
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(t *Transport) {
		t.header.Add(key, value)
	}
}

// New creates a Transport posting to endpoint. The timeout bounds a whole round trip.
func New(endpoint string, timeout time.Duration, opts ...Option) *Transport {
	t := &Transport{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   timeout,
			Transport: defaultRoundTripper(),
		},
		header: make(http.Header),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func defaultRoundTripper() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxConnsPerHost:     16,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
}

type requestBody struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Endpoint returns the URL requests are posted to.
func (t *Transport) Endpoint() string {
	return t.endpoint
}

// Request posts the operation and reads the whole response before returning.
func (t *Transport) Request(ctx context.Context, req domain.Request) (ports.Response, error) {
	if req.Operation == nil {
		return nil, zerr.With(domain.ErrInvalidOperation, "reason", "nil operation")
	}
	payload, err := json.Marshal(requestBody{
		Query:         req.Operation.Document,
		OperationName: req.Operation.Name,
		Variables:     req.Variables,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to encode request"), "operation", req.Operation.Name)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build request"), "endpoint", t.endpoint)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for k, vs := range t.header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, t.fail(req, errors.Join(domain.ErrTransport, err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, t.fail(req, errors.Join(domain.ErrTransport, err))
	}

	var result domain.Result
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := zerr.With(domain.ErrTransport, "status", resp.StatusCode)
		if decodeErr == nil && result.HasErrors() {
			err = zerr.With(err, "message", result.Errors[0].Message)
		}
		return nil, t.fail(req, err)
	}
	if decodeErr != nil {
		return nil, t.fail(req, errors.Join(domain.ErrTransport, decodeErr))
	}

	return &singleResponse{result: result}, nil
}

func (t *Transport) fail(req domain.Request, err error) error {
	return zerr.With(zerr.With(err, "operation", req.Operation.Name), "endpoint", t.endpoint)
}

// singleResponse yields exactly one payload.
type singleResponse struct {
	result  domain.Result
	read    bool
	current domain.Result
}

func (r *singleResponse) Next() bool {
	if r.read {
		return false
	}
	r.read = true
	r.current = r.result
	return true
}

func (r *singleResponse) Get() domain.Result { return r.current }

func (r *singleResponse) Err() error { return nil }

func (r *singleResponse) Close() { r.read = true }
