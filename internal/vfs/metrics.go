package vfs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	persistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vfs_persist_duration_seconds",
		Help:    "Time spent writing the full file system state to the backend.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	persistErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vfs_persist_errors_total",
		Help: "Number of failed file system state writes.",
	})

	loadFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vfs_load_fallbacks_total",
		Help: "Number of times malformed state was replaced by the default tree.",
	})
)
