// Package metrics exposes the process-wide Prometheus instrumentation for
// dictionary builds: how many ran, how long they took, and how much
// comparator/rotation/collision work each structure did.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildsTotal counts every dictionary build, labeled by structure.
	BuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dictbench",
		Name:      "builds_total",
		Help:      "Total number of dictionary builds run.",
	}, []string{"structure"})

	// BuildErrorsTotal counts builds that failed, labeled by structure.
	BuildErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dictbench",
		Name:      "build_errors_total",
		Help:      "Total number of dictionary builds that failed.",
	}, []string{"structure"})

	// BuildDuration records wall-clock build duration, labeled by
	// structure.
	BuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dictbench",
		Name:      "build_duration_seconds",
		Help:      "Time spent building a dictionary from a single file.",
		Buckets:   prometheus.ExponentialBuckets(.005, 2, 12),
	}, []string{"structure"})

	// Comparisons records the comparator-call count of the most recently
	// completed build, labeled by structure.
	Comparisons = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dictbench",
		Name:      "comparisons",
		Help:      "Key comparisons performed by the last build of a structure.",
	}, []string{"structure"})

	// RotationsOrCollisions records the rebalancing-rotation count (tree
	// structures) or bucket/probe-collision count (hash structures) of
	// the most recently completed build, labeled by structure.
	RotationsOrCollisions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dictbench",
		Name:      "rotations_or_collisions",
		Help:      "Rotations (trees) or collisions (hash tables) from the last build of a structure.",
	}, []string{"structure"})
)
