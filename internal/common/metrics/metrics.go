// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_api_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"path", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "search_api_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"path"},
	)

	UpstreamSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "search_api_upstream_search_duration_seconds",
			Help: "Duration of upstream Google Custom Search calls in seconds",
		},
	)

	ImageValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_api_image_validations_total",
			Help: "Total number of image validation probes by outcome",
		},
		[]string{"outcome"},
	)
)
