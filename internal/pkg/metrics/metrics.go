package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "object_explorer"

// Fetch outcomes recorded in FetchTotal.
const (
	OutcomeLoaded = "loaded"
	OutcomeFailed = "failed"
	OutcomeStale  = "stale"
)

var (
	FetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "owned_fetch_total",
		Help:      "Owned-object fetches by source mode and outcome.",
	}, []string{"source", "outcome"})

	FetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "owned_fetch_duration_seconds",
		Help:      "Duration of owned-object fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})

	ObjectsResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "objects_resolved_total",
		Help:      "Object references resolved, split by existence.",
	}, []string{"status"})

	RPCRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "JSON-RPC requests sent to live nodes.",
	}, []string{"network", "method", "result"})

	ActivePanels = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_panels",
		Help:      "Panel instances currently held in the registry.",
	})
)

var registerOnce sync.Once

// MustRegisterMetrics registers every collector with the default registry.
// Calling it more than once is a no-op.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(FetchTotal, FetchDuration, ObjectsResolved, RPCRequests, ActivePanels)
	})
}

// ObserveFetch records the outcome and duration of one fetch.
func ObserveFetch(source, outcome string, started time.Time) {
	FetchTotal.WithLabelValues(source, outcome).Inc()
	FetchDuration.WithLabelValues(source).Observe(time.Since(started).Seconds())
}
