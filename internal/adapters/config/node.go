package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/core/domain"
)

// NodeID is the unique identifier for the configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.ClientConfig]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.ClientConfig, error) {
			loader := &FileConfigLoader{Filename: PathFromEnv()}
			return loader.Load()
		},
	})
}
