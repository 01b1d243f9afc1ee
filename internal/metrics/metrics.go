package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Ledger
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_total",
			Help: "Transactions recorded in the ledger",
		},
		[]string{"kind", "method"},
	)
	TransactionsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_transactions_rejected_total",
			Help: "Transaction intents ignored for an empty reason or a zero amount",
		},
	)
	Resets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_resets_total",
			Help: "Ledger resets",
		},
		[]string{"reason"}, // initial_amount|clear
	)
	Balance = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_balance",
			Help: "Current balance per account",
		},
		[]string{"account"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_store_errors_total",
			Help: "Failed persistence operations",
		},
		[]string{"op"}, // load|save|clear
	)

	// Background work
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
	AuditEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_events_failed_total",
			Help: "Audit events dropped or rejected by a sink",
		},
	)

	initOnce sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			TransactionsTotal,
			TransactionsRejected,
			Resets,
			Balance,
			StoreErrors,
			WorkerQueueDepth,
			AuditEventsFailed,
		)
	})
}
