// Package metrics defines Prometheus instrumentation for dispatches and HTTP.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Dispatch Prometheus metrics.
var (
	DispatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pathwise",
			Name:      "dispatch_requests_total",
			Help:      "Total number of capability dispatches",
		},
		[]string{"capability", "status"},
	)

	DispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pathwise",
			Name:      "dispatch_duration_seconds",
			Help:      "Capability dispatch duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"capability"},
	)

	RecordsReturnedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pathwise",
			Name:      "records_returned_total",
			Help:      "Total normalized records returned to callers",
		},
		[]string{"capability"},
	)

	CatalogCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pathwise",
			Name:      "catalog_cache_total",
			Help:      "Course catalog cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var dispatchMetricsRegistered bool

// RegisterDispatchMetrics registers Prometheus dispatch metrics. Must be called once from main.
func RegisterDispatchMetrics() {
	if dispatchMetricsRegistered {
		return
	}
	prometheus.MustRegister(DispatchRequestsTotal)
	prometheus.MustRegister(DispatchDuration)
	prometheus.MustRegister(RecordsReturnedTotal)
	prometheus.MustRegister(CatalogCacheTotal)
	dispatchMetricsRegistered = true
}
