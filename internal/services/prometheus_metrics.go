package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportCacheLookups  *prometheus.CounterVec
	reportCacheWrites   *prometheus.CounterVec
	reportDuration      prometheus.Histogram
	costsCreated        *prometheus.CounterVec
	costsGenerated      prometheus.Counter
	usersCreated        prometheus.Counter
	usersTotal          prometheus.Gauge
	requestLogsWritten  *prometheus.CounterVec
	requestLogQueueSize prometheus.Gauge
}

// NewPrometheusMetrics registers the service metrics with reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		reportCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_cache_lookups_total",
				Help: "Total number of materialized report lookups for closed months",
			},
			[]string{"result"},
		),
		reportCacheWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_cache_writes_total",
				Help: "Total number of report materialization attempts by outcome",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_duration_milliseconds",
				Help:    "Monthly report request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		costsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "costs_created_total",
				Help: "Total number of costs added",
			},
			[]string{"category"},
		),
		costsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "costs_generated_total",
				Help: "Total number of fabricated development costs",
			},
		),
		usersCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "users_created_total",
				Help: "Total number of users created",
			},
		),
		usersTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "users_total",
				Help: "Number of users returned by the last listing",
			},
		),
		requestLogsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "request_logs_persisted_total",
				Help: "Total number of request logs handled by the writer",
			},
			[]string{"status"},
		),
		requestLogQueueSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "request_log_queue_depth",
				Help: "Current depth of the request log queue",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "report.cache.lookup":
		m.reportCacheLookups.WithLabelValues(tags["result"]).Inc()
	case "report.cache.write":
		m.reportCacheWrites.WithLabelValues(tags["status"]).Inc()
	case "cost.created":
		m.costsCreated.WithLabelValues(tags["category"]).Inc()
	case "cost.generated":
		count, err := strconv.ParseFloat(tags["count"], 64)
		if err != nil {
			count = 1
		}
		m.costsGenerated.Add(count)
	case "user.created":
		m.usersCreated.Inc()
	case "request_log.persisted":
		m.requestLogsWritten.WithLabelValues(tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.duration":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "users.total":
		m.usersTotal.Set(value)
	case "request_log.queue_depth":
		m.requestLogQueueSize.Set(value)
	}
}
