// Package metrics defines and registers all custom Prometheus metrics for
// the PigeonPulse loft API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pigeonpulse"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credential", "email_unverified", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts explicit logouts that landed a token on the
// denylist.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens revoked via logout.",
	},
)

// RequestAuthTotal counts the request filter's decisions.
// Label:
//   - result: "authenticated", "rejected", "public"
var RequestAuthTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_auth_total",
		Help:      "Total number of request authentication decisions, by result.",
	},
	[]string{"result"},
)

// PigeonsCreatedTotal counts newly registered pigeons.
// Label:
//   - status: "racing", "breeding", or "other"
var PigeonsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pigeons_created_total",
		Help:      "Total number of pigeons registered, by status.",
	},
	[]string{"status"},
)

// PedigreeLookupsTotal counts pedigree traversals.
// Label:
//   - direction: "ancestors" or "descendants"
var PedigreeLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pedigree_lookups_total",
		Help:      "Total number of pedigree traversals, by direction.",
	},
	[]string{"direction"},
)

// CensusExportsTotal counts generated census PDF documents.
var CensusExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "census_exports_total",
		Help:      "Total number of census PDF exports generated.",
	},
)
