package router

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/adapters/httptransport" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stashql/internal/adapters/wstransport"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stashql/internal/graphql"
)

// NodeID is the unique identifier for the router Graft node.
const NodeID graft.ID = "engine.router"

func init() {
	graft.Register(graft.Node[*Router]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			httptransport.NodeID,
			wstransport.NodeID,
			graphql.NodeID,
		},
		Run: func(ctx context.Context) (*Router, error) {
			request, err := graft.Dep[*httptransport.Transport](ctx)
			if err != nil {
				return nil, err
			}

			stream, err := graft.Dep[*wstransport.Transport](ctx)
			if err != nil {
				return nil, err
			}

			catalog, err := graft.Dep[*graphql.Catalog](ctx)
			if err != nil {
				return nil, err
			}

			// Misrouted operations are a startup failure, not a runtime one.
			if err := Validate(catalog.Operations()); err != nil {
				return nil, err
			}

			return New(request, stream), nil
		},
	})
}
