// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stashql/internal/adapters/config"
	_ "go.trai.ch/stashql/internal/adapters/httptransport"
	_ "go.trai.ch/stashql/internal/adapters/logger"
	_ "go.trai.ch/stashql/internal/adapters/memstore"
	_ "go.trai.ch/stashql/internal/adapters/metrics"
	_ "go.trai.ch/stashql/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/stashql/internal/adapters/wstransport"
	// Register app, engine and catalog nodes.
	_ "go.trai.ch/stashql/internal/app"
	_ "go.trai.ch/stashql/internal/engine/invalidation"
	_ "go.trai.ch/stashql/internal/engine/router"
	_ "go.trai.ch/stashql/internal/graphql"
)
