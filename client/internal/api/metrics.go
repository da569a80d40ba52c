package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// placeholdersTotal counts records synthesized locally because the backend
// endpoint was not deployed.
var placeholdersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "daily_journal",
		Subsystem: "api",
		Name:      "placeholder_records_total",
		Help:      "Records synthesized client-side after an endpoint-level 404.",
	},
	[]string{"resource"},
)
