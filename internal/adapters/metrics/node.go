package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
)

// NodeID is the unique identifier for the metrics Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.Metrics]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Metrics, error) {
			cfg, err := graft.Dep[*domain.ClientConfig](ctx)
			if err != nil {
				return nil, err
			}
			if !cfg.Metrics.Enabled {
				return Noop{}, nil
			}
			return New(), nil
		},
	})
}
