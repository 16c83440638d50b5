// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItemsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_items_processed_total",
			Help: "Total number of input items processed successfully",
		},
		[]string{"resource", "operation"},
	)

	ItemsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_items_failed_total",
			Help: "Total number of input items that failed",
		},
		[]string{"resource", "operation", "error_code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "connector_request_duration_seconds",
			Help: "Duration of outbound API calls in seconds",
		},
		[]string{"resource", "operation"},
	)
)
