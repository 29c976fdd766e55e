package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// gazette-api HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gazette_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"route", "method", "code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gazette_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gazette_active_requests",
		Help: "Current in-flight requests",
	})

	// audit dispatch metrics
	DispatchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gazette_dispatch_total",
		Help: "Workflow dispatch attempts by outcome",
	}, []string{"outcome"})

	DispatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gazette_dispatch_duration_seconds",
		Help:    "Outbound workflow dispatch duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	// content metrics
	ContentReadErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gazette_content_read_errors_total",
		Help: "Failed content file reads",
	}, []string{"file"})
)

func RegisterAll(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal, HTTPRequestDuration, ActiveRequests,
		DispatchTotal, DispatchDuration, ContentReadErrors,
	)
}
