package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bot-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "duck",
			Subsystem: "bot_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "duck",
			Subsystem: "bot_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Bot mutation counters
	BotMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "duck",
			Subsystem: "bot_api",
			Name:      "bot_mutations_total",
			Help:      "Total bot create/update/delete operations",
		},
		[]string{"operation", "outcome"},
	)

	// Avatar upload bytes
	AvatarUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "duck",
			Subsystem: "bot_api",
			Name:      "avatar_upload_bytes",
			Help:      "Size of uploaded avatar images in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)
