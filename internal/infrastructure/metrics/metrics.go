package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersCompleted counts successfully committed transfers,
	// including idempotent replays.
	TransfersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gowallet_transfers_completed_total",
		Help: "Total number of transfers completed",
	})

	// TransferErrors counts rejected transfers by error kind.
	TransferErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gowallet_transfer_errors_total",
			Help: "Total number of transfer errors by type",
		},
		[]string{"error_type"},
	)

	// EntriesWritten counts ledger entries persisted by the storage layer.
	EntriesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gowallet_entries_written_total",
		Help: "Total number of ledger entries written",
	})

	// AccountsProvisioned counts accounts created on first credit.
	AccountsProvisioned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gowallet_accounts_provisioned_total",
		Help: "Total number of accounts created on demand",
	})

	// ConsistencyChecks counts ledger consistency scans by outcome.
	ConsistencyChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gowallet_consistency_checks_total",
			Help: "Total number of ledger consistency checks by result",
		},
		[]string{"result"},
	)
)
