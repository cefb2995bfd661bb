// Package observability holds the prometheus instrumentation for the domain
// engine. Counters only; the engine has no latency-sensitive paths worth a
// histogram.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WishlistTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spendguard_wishlist_transitions_total",
		Help: "Wishlist lifecycle transitions by target status.",
	}, []string{"to"})

	PointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spendguard_points_awarded_total",
		Help: "Total points granted across all users.",
	})

	BadgesGranted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spendguard_badges_granted_total",
		Help: "Badge grants across all users.",
	})

	LevelUps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spendguard_level_ups_total",
		Help: "Level-up events across all users.",
	})

	SweepRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spendguard_cooldown_sweeps_total",
		Help: "Cooldown sweep executions.",
	})

	SweepTransitioned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spendguard_cooldown_sweep_items_total",
		Help: "Items moved to ready_to_review by the sweep.",
	})

	InsightRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spendguard_insight_requests_total",
		Help: "AI insight proxy requests by outcome.",
	}, []string{"outcome"})
)
