package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TasksDispatched counts background tasks handed to the dispatcher by topic and result.
	TasksDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_tasks_dispatched_total",
		Help: "Background tasks dispatched by topic and result",
	}, []string{"topic", "result"})

	// TasksHandled counts background tasks processed by workers by topic and result.
	TasksHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_tasks_handled_total",
		Help: "Background tasks handled by topic and result",
	}, []string{"topic", "result"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_cache_lookups_total",
		Help: "Read-through cache lookups by result",
	}, []string{"result"})

	// CountsMaterialized counts lazily created zero counters.
	CountsMaterialized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_counts_materialized_total",
		Help: "Zero-valued counters created on first read",
	}, []string{"kind"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"method", "route", "status"})
)

const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultHit   = "hit"
	ResultMiss  = "miss"
)
