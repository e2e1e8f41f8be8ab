package app

import (
	"context"
	"errors"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// Closer is implemented by components holding connections.
type Closer interface {
	Close() error
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	Client    *Client
	Config    *domain.ClientConfig
	Logger    ports.Logger
	Metrics   ports.Metrics
	Telemetry ports.Telemetry
	Store     ports.CacheStore
	Stream    Closer
}

// NewApp resolves the dependency graph and returns the configured components.
func NewApp(ctx context.Context) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx)
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Close releases the client, the stream connection, the store and the telemetry
// recording, in that order.
func (c *Components) Close() error {
	if c.Client != nil {
		c.Client.Close()
	}
	var errs []error
	if c.Stream != nil {
		errs = append(errs, c.Stream.Close())
	}
	if c.Store != nil {
		errs = append(errs, c.Store.Close())
	}
	if c.Telemetry != nil {
		errs = append(errs, c.Telemetry.Close())
	}
	return errors.Join(errs...)
}
