package httptransport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stashql/internal/core/domain"
)

// NodeID is the unique identifier for the HTTP transport Graft node.
const NodeID graft.ID = "adapter.http_transport"

func init() {
	graft.Register(graft.Node[*Transport]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Transport, error) {
			cfg, err := graft.Dep[*domain.ClientConfig](ctx)
			if err != nil {
				return nil, err
			}

			endpoints, err := domain.DeriveEndpoints(*cfg)
			if err != nil {
				return nil, err
			}

			return New(endpoints.HTTP, cfg.Transport.RequestTimeout), nil
		},
	})
}
