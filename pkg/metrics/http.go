package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of HTTP handlers, by method and path
	HTTPRequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Total number of HTTP requests served
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequestLatency,
		HTTPRequestsTotal,
	)
}
