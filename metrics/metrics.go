package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vanachitra_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path"})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "vanachitra_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	ErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vanachitra_errors_total",
		Help: "Total number of 5xx responses",
	}, []string{"path"})
	DSSEvaluationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vanachitra_dss_evaluations_total",
		Help: "Total DSS rule evaluations",
	})
	GeoDataCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vanachitra_geodata_cache_hits_total",
		Help: "GeoJSON file cache hits",
	})
	GeoDataCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vanachitra_geodata_cache_misses_total",
		Help: "GeoJSON file cache misses",
	})
)

// Register registers all collectors with the default registry.
func Register() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDurationMs,
		ErrorsTotal,
		DSSEvaluationsTotal,
		GeoDataCacheHits,
		GeoDataCacheMisses,
	)
}
