// Package ports defines the interfaces between the client core and its adapters.
package ports

import (
	"context"

	"go.trai.ch/stashql/internal/core/domain"
)

//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks

// Transport carries GraphQL operations to the server.
type Transport interface {
	// Request starts the operation. The returned Response must be closed by the caller.
	Request(ctx context.Context, req domain.Request) (Response, error)
}

// Response iterates over the payloads of one operation. Request-response transports
// yield exactly one payload, stream transports yield payloads until the server
// completes the operation or the response is closed.
type Response interface {
	// Next blocks until a payload is available and reports false once the response is done.
	Next() bool
	// Get returns the payload made current by the last successful Next.
	Get() domain.Result
	// Err returns the error that ended the response, if any.
	Err() error
	// Close releases the response. It is safe to call more than once.
	Close()
}
