package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stashql/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stashql/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stashql/internal/adapters/memstore"           //nolint:depguard // Wired in app layer
	"go.trai.ch/stashql/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/stashql/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/stashql/internal/adapters/wstransport"        //nolint:depguard // Wired in app layer
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/stashql/internal/engine/invalidation"
	"go.trai.ch/stashql/internal/engine/router"
	"go.trai.ch/stashql/internal/graphql"
)

const (
	// ClientNodeID is the unique identifier for the Client Graft node.
	ClientNodeID graft.ID = "app.client"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			metrics.NodeID,
			progrock.NodeID,
			memstore.NodeID,
			graphql.NodeID,
			invalidation.NodeID,
			router.NodeID,
		},
		Run: runClientNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ClientNodeID,
			config.NodeID,
			logger.NodeID,
			metrics.NodeID,
			progrock.NodeID,
			memstore.NodeID,
			wstransport.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runClientNode(ctx context.Context) (*Client, error) {
	cfg, err := graft.Dep[*domain.ClientConfig](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := graft.Dep[*graphql.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	policy, err := graft.Dep[*invalidation.Policy](ctx)
	if err != nil {
		return nil, err
	}

	rt, err := graft.Dep[*router.Router](ctx)
	if err != nil {
		return nil, err
	}

	return New(rt, store, policy, catalog, log,
		WithTimeout(cfg.Transport.RequestTimeout),
		WithMetrics(m),
		WithTelemetry(tel),
	), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	client, err := graft.Dep[*Client](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.ClientConfig](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	stream, err := graft.Dep[*wstransport.Transport](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		Client:    client,
		Config:    cfg,
		Logger:    log,
		Metrics:   m,
		Telemetry: tel,
		Store:     store,
		Stream:    stream,
	}, nil
}
