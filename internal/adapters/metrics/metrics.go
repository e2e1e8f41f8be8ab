// Package metrics exports client counters and latencies to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/stashql/internal/core/domain"
)

const namespace = "stashql"

// Recorder implements ports.Metrics on a private Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry

	operations     *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	cacheLookups   *prometheus.CounterVec
	invalidated    *prometheus.CounterVec
	invalidFailure *prometheus.CounterVec
	reconnects     prometheus.Counter
}

// New creates a Recorder and registers its collectors along with the Go runtime
// collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of client operations by terminal status",
			},
			[]string{"operation", "kind", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Latency of client operations, cache hits included",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "kind"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Root field cache lookups by result",
			},
			[]string{"operation", "hit"},
		),
		invalidated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_invalidated_keys_total",
				Help:      "Cache keys evicted after successful mutations",
			},
			[]string{"mutation"},
		),
		invalidFailure: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_invalidation_failures_total",
				Help:      "Invalidations that failed after a successful mutation",
			},
			[]string{"mutation"},
		),
		reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_reconnects_total",
			Help:      "Successful reconnects of the subscription connection",
		}),
	}

	r.registry.MustRegister(
		r.operations,
		r.latency,
		r.cacheLookups,
		r.invalidated,
		r.invalidFailure,
		r.reconnects,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveOperation counts a finished operation and records its latency.
func (r *Recorder) ObserveOperation(name string, kind domain.OperationKind, status domain.OperationStatus, elapsed time.Duration) {
	r.operations.WithLabelValues(name, kind.String(), string(status)).Inc()
	r.latency.WithLabelValues(name, kind.String()).Observe(elapsed.Seconds())
}

// CacheLookup counts a cache lookup.
func (r *Recorder) CacheLookup(operation string, hit bool) {
	r.cacheLookups.WithLabelValues(operation, strconv.FormatBool(hit)).Inc()
}

// Invalidated adds the number of evicted keys.
func (r *Recorder) Invalidated(mutation string, keys int) {
	r.invalidated.WithLabelValues(mutation).Add(float64(keys))
}

// InvalidationFailed counts a failed invalidation.
func (r *Recorder) InvalidationFailed(mutation string) {
	r.invalidFailure.WithLabelValues(mutation).Inc()
}

// StreamReconnected counts a reconnect.
func (r *Recorder) StreamReconnected() {
	r.reconnects.Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
