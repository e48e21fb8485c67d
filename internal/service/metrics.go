package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard_service",
		Subsystem: "reports",
		Name:      "cache_hits_total",
		Help:      "Total number of reports served from cache.",
	}, []string{"report"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard_service",
		Subsystem: "reports",
		Name:      "cache_misses_total",
		Help:      "Total number of reports computed from the store.",
	}, []string{"report"})
)
