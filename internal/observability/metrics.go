package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_engine_matches_total",
			Help: "Total number of candidate/position pairs scored",
		},
		[]string{"operation"},
	)

	MatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_engine_match_duration_seconds",
			Help: "Duration of match computations in seconds",
		},
		[]string{"operation"},
	)

	StrategyExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_engine_strategy_executions_total",
			Help: "Total strategy executions by outcome",
		},
		[]string{"strategy", "outcome"},
	)

	StrategyLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_engine_strategy_latency_seconds",
			Help: "Per-strategy execution latency in seconds",
		},
		[]string{"strategy"},
	)

	ScoreClamps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_engine_score_clamps_total",
			Help: "Calculator scores clamped back into the unit range",
		},
		[]string{"criterion"},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_engine_batch_pairs",
			Help:    "Number of pairs evaluated per batch call",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)
