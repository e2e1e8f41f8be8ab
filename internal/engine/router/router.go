// Package router dispatches operations to the request-response or the stream transport.
package router

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/zerr"
)

// Router splits traffic by operation kind: subscriptions go to the stream transport,
// queries and mutations to the request transport. It implements ports.Transport.
type Router struct {
	request ports.Transport
	stream  ports.Transport
}

// New creates a Router over the two transports.
func New(request, stream ports.Transport) *Router {
	return &Router{request: request, stream: stream}
}

// Route returns the transport an operation must use. It never touches the network.
func (r *Router) Route(op *domain.Operation) (ports.Transport, error) {
	if op == nil {
		return nil, zerr.With(domain.ErrUnknownOperationKind, "operation", "<nil>")
	}
	switch op.Kind {
	case domain.OperationSubscription:
		return r.stream, nil
	case domain.OperationQuery, domain.OperationMutation:
		return r.request, nil
	default:
		return nil, zerr.With(domain.ErrUnknownOperationKind, "operation", op.Name)
	}
}

// Request routes and starts the operation.
func (r *Router) Request(ctx context.Context, req domain.Request) (ports.Response, error) {
	t, err := r.Route(req.Operation)
	if err != nil {
		return nil, err
	}
	return t.Request(ctx, req)
}

// Validate checks a set of operations before the router serves them. Every operation
// must be named, uniquely, and of a routable kind.
func Validate(ops []*domain.Operation) error {
	seen := make(map[string]struct{}, len(ops))
	for i, op := range ops {
		if op == nil {
			return zerr.With(domain.ErrUnknownOperationKind, "index", i)
		}
		switch op.Kind {
		case domain.OperationQuery, domain.OperationMutation, domain.OperationSubscription:
		default:
			return zerr.With(domain.ErrUnknownOperationKind, "operation", op.Name)
		}
		if op.Name == "" {
			return zerr.With(domain.ErrInvalidOperation, "index", i)
		}
		if _, dup := seen[op.Name]; dup {
			return zerr.With(domain.ErrDuplicateOperation, "operation", op.Name)
		}
		seen[op.Name] = struct{}{}
	}
	return nil
}
