package handler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard_service",
		Subsystem: "http",
		Name:      "reports_total",
		Help:      "Total number of dashboard reports served.",
	}, []string{"report"})

	reportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard_service",
		Subsystem: "http",
		Name:      "report_duration_seconds",
		Help:      "Histogram of report handling durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"report"})

	invalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dashboard_service",
		Subsystem: "kafka_consumer",
		Name:      "invalidations_total",
		Help:      "Total number of cache invalidations triggered by order events.",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dashboard_service",
		Subsystem: "kafka_consumer",
		Name:      "events_failed_total",
		Help:      "Total number of order events that could not be handled.",
	})
)

func observe(report string, start time.Time) {
	reportsTotal.WithLabelValues(report).Inc()
	reportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}
