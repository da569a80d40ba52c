package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daily_journal",
			Subsystem: "store",
			Name:      "mutations_applied_total",
			Help:      "Optimistic mutations applied to the visible collection.",
		},
		[]string{"action"},
	)

	mutationsConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daily_journal",
			Subsystem: "store",
			Name:      "mutations_confirmed_total",
			Help:      "Mutations the backend confirmed (or accepted via endpoint-missing 404).",
		},
		[]string{"action"},
	)

	mutationsReverted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daily_journal",
			Subsystem: "store",
			Name:      "mutations_reverted_total",
			Help:      "Mutations rolled back by a full refetch after a terminal failure.",
		},
		[]string{"action"},
	)
)
