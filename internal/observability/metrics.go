package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_docnum_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_docnum_active_connections",
			Help: "Number of active connections",
		},
	)

	// RateLimited counts requests rejected by the rate limiter
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "app_docnum_rate_limited_total",
			Help: "Number of requests rejected by the rate limiter",
		},
	)

	// DocumentsGenerated counts generated numbers per kind
	DocumentsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_docnum_documents_generated_total",
			Help: "Number of generated CPF/CNPJ numbers",
		},
		[]string{"kind"},
	)

	// Validations counts validation outcomes per kind
	Validations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_docnum_validations_total",
			Help: "Number of CPF/CNPJ validations by result",
		},
		[]string{"kind", "result"},
	)

	// FormatOperations counts format calls per kind and status
	FormatOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_docnum_format_operations_total",
			Help: "Number of CPF/CNPJ format operations",
		},
		[]string{"kind", "status"},
	)

	// OperationDuration tracks the duration of service operations
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "app_docnum_operation_duration_seconds",
			Help:    "Duration of document operations in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"operation"},
	)
)
