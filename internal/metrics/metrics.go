// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Rows written per endpoint
//   - Pair failures by endpoint and stage
//   - Cycle count and duration
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingestor_rows_written_total",
		Help: "Total rows written to the store, per endpoint",
	}, []string{"endpoint"})

	PairFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingestor_pair_failures_total",
		Help: "Total (symbol, endpoint) pair failures, by endpoint and stage",
	}, []string{"endpoint", "stage"})

	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingestor_cycles_total",
		Help: "Total poll cycles run",
	})

	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ingestor_cycle_duration_seconds",
		Help:    "Duration of full poll cycles",
		Buckets: prometheus.DefBuckets,
	})
)
