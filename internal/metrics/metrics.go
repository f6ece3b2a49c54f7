package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Persistence Metrics
var (
	ItemsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSaved,
			Help: HelpTextItemsSaved,
		},
		[]string{LabelState},
	)

	ItemsDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsDiscarded,
			Help: HelpTextItemsDiscarded,
		},
	)

	StatementsAppended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatementsAppended,
			Help: HelpTextStatementsAppended,
		},
	)

	TransactionsCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTransactionsCommitted,
			Help: HelpTextTransactionsCommitted,
		},
	)

	TransactionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTransactionFailures,
			Help: HelpTextTransactionFailures,
		},
	)

	StorageQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStorageQueueDepth,
			Help: HelpTextStorageQueueDepth,
		},
	)
)

// Engine Metrics
var (
	IntegrityWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIntegrityWarnings,
			Help: HelpTextIntegrityWarnings,
		},
		[]string{LabelKind},
	)

	BonusCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusCacheLookups,
			Help: HelpTextBonusCacheLookups,
		},
		[]string{LabelResult},
	)
)
