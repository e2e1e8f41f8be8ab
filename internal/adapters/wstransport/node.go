package wstransport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/adapters/config"  //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stashql/internal/adapters/metrics" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// NodeID is the unique identifier for the websocket transport Graft node.
const NodeID graft.ID = "adapter.ws_transport"

func init() {
	graft.Register(graft.Node[*Transport]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, metrics.NodeID},
		Run: func(ctx context.Context) (*Transport, error) {
			cfg, err := graft.Dep[*domain.ClientConfig](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			endpoints, err := domain.DeriveEndpoints(*cfg)
			if err != nil {
				return nil, err
			}

			opts := OptionsFromConfig(cfg.Transport)
			opts.OnReconnect = m.StreamReconnected
			return New(endpoints.WebSocket, opts), nil
		},
	})
}
