// Package metrics holds the Prometheus collectors of the dashboard service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "dashboard"

// Ledger client metrics.
var (
	LedgerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_requests_total",
			Help:      "Total number of benefits-ledger requests",
		},
		[]string{"endpoint", "status"}, // status: "success" / "error"
	)

	LedgerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_request_duration_seconds",
			Help:      "Benefits-ledger request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	LedgerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_errors_total",
			Help:      "Total benefits-ledger errors",
		},
		[]string{"endpoint", "error_type"},
	)

	LedgerRecordsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_records_rejected_total",
			Help:      "Fetched records dropped by validation",
		},
		[]string{"list"},
	)
)

// List and snapshot metrics.
var (
	SnapshotCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_cache_total",
			Help:      "Snapshot cache fallbacks served and missed",
		},
		[]string{"list", "result"}, // "hit" / "miss"
	)

	ListViewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_views_total",
			Help:      "Rendered list views",
		},
		[]string{"list", "outcome"}, // "rows" / "empty"
	)

	ListRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "list_records",
			Help:      "Records in the current snapshot of each list",
		},
		[]string{"list"},
	)
)

var (
	ledgerMetricsRegistered bool
	listMetricsRegistered   bool
)

// RegisterLedgerMetrics registers the ledger client metrics. Must be called once from main.
func RegisterLedgerMetrics() {
	if ledgerMetricsRegistered {
		return
	}
	prometheus.MustRegister(LedgerRequestsTotal)
	prometheus.MustRegister(LedgerRequestDuration)
	prometheus.MustRegister(LedgerErrorsTotal)
	prometheus.MustRegister(LedgerRecordsRejectedTotal)
	ledgerMetricsRegistered = true
}

// RegisterListMetrics registers list and snapshot metrics. Must be called once from main.
func RegisterListMetrics() {
	if listMetricsRegistered {
		return
	}
	prometheus.MustRegister(SnapshotCacheTotal)
	prometheus.MustRegister(ListViewsTotal)
	prometheus.MustRegister(ListRecords)
	listMetricsRegistered = true
}
