package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors exported on /metrics: HTTP traffic per route
// and latency of every store adapter call.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestLatency *prometheus.HistogramVec
	StoreOpDuration    *prometheus.HistogramVec
}

// NewMetrics registers all collectors on reg. Use a fresh
// prometheus.NewRegistry() per test to avoid duplicate registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestLatency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StoreOpDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_store_operation_duration_seconds",
			Help:    "Duration of store adapter operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"backend", "operation", "status"}), // operation: save, find_by_id, find_all, ...
	}
}
