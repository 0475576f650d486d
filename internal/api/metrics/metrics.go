// Package metrics defines and registers all custom Prometheus metrics for the
// vending marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto and are exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vending"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts account registrations.
// Label:
//   - role: "seller" or "buyer"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Vending metrics ───────────────────────────────────────────────────────────

// CoinsDepositedTotal counts accepted coin deposits.
// Label:
//   - coin: the denomination deposited ("5", "10", "20", "50", "100")
var CoinsDepositedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coins_deposited_total",
		Help:      "Total number of coins accepted, by denomination.",
	},
	[]string{"coin"},
)

// DepositResetsTotal counts balance resets.
var DepositResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposit_resets_total",
		Help:      "Total number of deposit resets.",
	},
)

// PurchasesTotal counts completed purchases.
var PurchasesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of completed purchases.",
	},
)

// UnitsSoldTotal counts product units sold across all purchases.
var UnitsSoldTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_sold_total",
		Help:      "Total number of product units sold.",
	},
)

// ChangeCoinsReturnedTotal counts coins returned as change.
// Label:
//   - coin: the denomination returned ("5", "10", "20", "50", "100")
var ChangeCoinsReturnedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_coins_returned_total",
		Help:      "Total number of coins returned as change, by denomination.",
	},
	[]string{"coin"},
)
