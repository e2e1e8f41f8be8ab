package graphql

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the operation catalog Graft node.
const NodeID graft.ID = "graphql.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Catalog, error) {
			return Default()
		},
	})
}
