// Package metrics defines and registers all custom Prometheus metrics for the
// CRM API. It is the single source of truth for metric names, labels, and
// help strings; everything registers with the default registry at init time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// ── Record store metrics ──────────────────────────────────────────────────────

// StoreOperationsTotal counts completed store operations.
// Labels:
//   - collection: the collection file name (e.g. "properties.json")
//   - operation: "load" or "save"
var StoreOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Total number of record store operations that succeeded.",
	},
	[]string{"collection", "operation"},
)

// StoreErrorsTotal counts failed store operations.
// Label:
//   - reason: "not_found", "corrupt", "encode", or "io"
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of record store operations that failed, by reason.",
	},
	[]string{"reason"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Property metrics ──────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created property listings.
// Label:
//   - status: the listing status supplied by the caller (free text)
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created, by status.",
	},
	[]string{"status"},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts stored uploads.
// Label:
//   - type: "image", "video", or "file"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files accepted by the upload endpoint, by type.",
	},
	[]string{"type"},
)

// ── Activity recorder metrics ─────────────────────────────────────────────────

// ActivityQueueDepth tracks the number of entries waiting in each recorder
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each recorder worker channel.",
	},
	[]string{"worker_id"},
)
