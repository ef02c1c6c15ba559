// Package metrics defines and registers all custom Prometheus metrics for the
// studio booking API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// OrdersCreatedTotal counts placed orders.
// Label:
//   - kind: "standard" (catalog service) or "custom" (individual request)
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed, by kind.",
	},
	[]string{"kind"},
)

// OrderStatusUpdatesTotal counts status overwrites.
// Label:
//   - status: the status applied (display label, e.g. "Выполнен")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of order status updates, by resulting status.",
	},
	[]string{"status"},
)

// MessagesSentTotal counts chat messages appended to order threads.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of chat messages sent.",
	},
)

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

// AnalysisRequestsTotal counts business-analysis requests.
// Label:
//   - result: "success", "not_configured" or "error"
var AnalysisRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_requests_total",
		Help:      "Total number of business analysis requests, by result.",
	},
	[]string{"result"},
)
