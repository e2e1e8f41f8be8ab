package ports

import (
	"time"

	"go.trai.ch/stashql/internal/core/domain"
)

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Metrics records client-side counters and latencies.
type Metrics interface {
	ObserveOperation(name string, kind domain.OperationKind, status domain.OperationStatus, elapsed time.Duration)
	CacheLookup(operation string, hit bool)
	Invalidated(mutation string, keys int)
	InvalidationFailed(mutation string)
	StreamReconnected()
}
