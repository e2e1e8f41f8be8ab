package metrics

import (
	"time"

	"go.trai.ch/stashql/internal/core/domain"
)

// Noop discards every observation.
type Noop struct{}

func (Noop) ObserveOperation(string, domain.OperationKind, domain.OperationStatus, time.Duration) {}

func (Noop) CacheLookup(string, bool) {}

func (Noop) Invalidated(string, int) {}

func (Noop) InvalidationFailed(string) {}

func (Noop) StreamReconnected() {}
