package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Posting metrics
	PostingsCreated  *prometheus.CounterVec
	PostingsReversed prometheus.Counter
	PostingDuration  prometheus.Histogram
	PostingAmount    *prometheus.HistogramVec
	PostingErrors    *prometheus.CounterVec

	// Idempotency metrics
	DuplicateRequests prometheus.Counter

	// Optimistic locking metrics
	ConflictRetries    prometheus.Counter
	ConflictExhausted  prometheus.Counter
	InsufficientFunds  prometheus.Counter

	// Outbox metrics
	OutboxRecorded  prometheus.Counter
	OutboxPublished prometheus.Counter
	OutboxFailed    prometheus.Counter
	OutboxLag       prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Posting metrics
		PostingsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgercore_postings_created_total",
				Help: "Total number of transactions posted by type",
			},
			[]string{"transaction_type"},
		),
		PostingsReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_postings_reversed_total",
			Help: "Total number of transactions reversed",
		}),
		PostingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgercore_posting_duration_seconds",
			Help:    "Duration of posting operations",
			Buckets: prometheus.DefBuckets,
		}),
		PostingAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgercore_posting_amount",
				Help:    "Posted amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"transaction_type"},
		),
		PostingErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgercore_posting_errors_total",
				Help: "Total number of posting errors by type",
			},
			[]string{"error_type"},
		),

		// Idempotency metrics
		DuplicateRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_duplicate_requests_total",
			Help: "Total number of requests resolved by the idempotency guard",
		}),

		// Optimistic locking metrics
		ConflictRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_conflict_retries_total",
			Help: "Total number of balance version conflict retries",
		}),
		ConflictExhausted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_conflict_exhausted_total",
			Help: "Total number of operations that ran out of conflict retries",
		}),
		InsufficientFunds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_insufficient_funds_total",
			Help: "Total number of withdrawals rejected for insufficient funds",
		}),

		// Outbox metrics
		OutboxRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_outbox_recorded_total",
			Help: "Total number of outbox events recorded",
		}),
		OutboxPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_outbox_published_total",
			Help: "Total number of outbox events published",
		}),
		OutboxFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgercore_outbox_failed_total",
			Help: "Total number of outbox publish failures",
		}),
		OutboxLag: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgercore_outbox_pending",
			Help: "Number of pending outbox events at the last relay poll",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgercore_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgercore_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgercore_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgercore_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgercore_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgercore_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgercore_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgercore_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
