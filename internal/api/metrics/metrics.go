// Package metrics defines and registers all custom Prometheus metrics for
// the course pricing API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pricing"

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

// AuthRejectionsTotal counts requests rejected by the authentication gate.
// Label:
//   - reason: "missing_header", "malformed", "signature_invalid", "expired"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authentication middleware, by reason.",
	},
	[]string{"reason"},
)

// PriceOperationsTotal counts successful price mutations.
// Label:
//   - op: "create", "update", "delete"
var PriceOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_operations_total",
		Help:      "Total number of successful price record mutations, by operation.",
	},
	[]string{"op"},
)
