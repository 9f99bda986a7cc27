// Package observability provides Prometheus metrics for the data-access layer.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedAssemblyDuration records how long assembling one user's feed took,
	// including all enrichment reads.
	FeedAssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chirp_feed_assembly_duration_seconds",
		Help:    "Feed assembly latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// FeedTweetsReturned records the size of assembled feeds.
	FeedTweetsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chirp_feed_tweets_returned",
		Help:    "Number of tweets returned per feed assembly",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	// MutationsTotal counts write operations by operation name and outcome.
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_mutations_total",
		Help: "Total write operations by operation and outcome",
	}, []string{"operation", "outcome"})
)

// ObserveFeedAssembly records one completed feed assembly.
func ObserveFeedAssembly(start time.Time, tweets int) {
	FeedAssemblyDuration.Observe(time.Since(start).Seconds())
	FeedTweetsReturned.Observe(float64(tweets))
}

// RecordMutation counts one write operation outcome.
func RecordMutation(operation, outcome string) {
	MutationsTotal.WithLabelValues(operation, outcome).Inc()
}
