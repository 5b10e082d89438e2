// Package metrics holds the Prometheus instruments for the matching flow,
// exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RankingRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchmaking_ranking_requests_total",
		Help: "Number of trainer ranking requests served.",
	})

	TrainersScored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchmaking_trainers_scored_total",
		Help: "Number of individual trainer profiles scored.",
	})

	GlobalScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchmaking_global_score",
		Help:    "Distribution of computed global match scores.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
)
