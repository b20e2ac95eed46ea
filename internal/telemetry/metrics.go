package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pingo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pingo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Transfer metrics
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pingo_transfers_total",
			Help: "Total number of transfer attempts",
		},
		[]string{"status"},
	)

	TransferFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pingo_transfer_failures_total",
			Help: "Transfer failures by stable failure code",
		},
		[]string{"code"},
	)

	TransferValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pingo_transfer_value",
			Help:    "Transfer value distribution",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	// Notification metrics
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pingo_notifications_total",
			Help: "Transfer notification deliveries by outcome",
		},
		[]string{"status"},
	)
)
