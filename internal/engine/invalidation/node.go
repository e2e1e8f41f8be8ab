package invalidation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/adapters/memstore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/stashql/internal/graphql"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the invalidation policy Graft node.
const NodeID graft.ID = "engine.invalidation"

func init() {
	graft.Register(graft.Node[*Policy]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			memstore.NodeID,
			graphql.NodeID,
		},
		Run: func(ctx context.Context) (*Policy, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			catalog, err := graft.Dep[*graphql.Catalog](ctx)
			if err != nil {
				return nil, err
			}

			report := Audit(graphql.Rules, graphql.ReadDependencies, catalog.Names(domain.OperationMutation))
			if len(report.Unruled) > 0 {
				return nil, zerr.With(zerr.With(domain.ErrRuleGap, "reason", "mutation without rule"), "mutation", report.Unruled[0])
			}

			return NewPolicy(store, graphql.Rules)
		},
	})
}
