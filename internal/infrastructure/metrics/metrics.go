package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransitionsTotal counts committed status transitions by action and new status.
	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assettrack_transaction_transitions_total",
		Help: "Committed transaction status transitions.",
	}, []string{"action", "status"})

	// AssetSyncFailures counts swallowed best-effort asset mutations by path.
	AssetSyncFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assettrack_asset_sync_failures_total",
		Help: "Asset synchronization failures (logged, never surfaced).",
	}, []string{"path"})
)
