// Package metrics holds the Prometheus instruments shared across the
// application. The ingestion engine swallows external lookup failures instead
// of surfacing them to callers, so the counters here are the only place those
// outages remain visible.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// BreachLookups counts calls to the external breach source by outcome
	// ("ok", "unavailable", "rate_limited").
	BreachLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "breachwatch",
		Name:      "breach_lookups_total",
		Help:      "External breach source lookups by outcome.",
	}, []string{"outcome"})

	// BreachEventsRecorded counts breach events actually appended to the log,
	// i.e. after deduplication.
	BreachEventsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "breachwatch",
		Name:      "breach_events_recorded_total",
		Help:      "Newly recorded breach events after deduplication.",
	})
)
