package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter("report.cache.lookup", map[string]string{"result": "hit"})
	metrics.IncrementCounter("report.cache.lookup", map[string]string{"result": "miss"})
	metrics.IncrementCounter("report.cache.write", map[string]string{"status": "race_lost"})
	metrics.IncrementCounter("report.cache.write", map[string]string{"status": "race_lost"})
	metrics.IncrementCounter("report.cache.write", map[string]string{"status": "failed"})
	metrics.IncrementCounter("cost.generated", map[string]string{"count": "25"})
	metrics.IncrementCounter("unknown.metric", nil)
	metrics.RecordGauge("users.total", 3, nil)
	metrics.RecordProcessingTime("report.duration", 12*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.reportCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.reportCacheLookups.WithLabelValues("miss")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.reportCacheWrites.WithLabelValues("race_lost")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.reportCacheWrites.WithLabelValues("failed")))
	assert.Equal(t, float64(25), testutil.ToFloat64(metrics.costsGenerated))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.usersTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.reportDuration))
}
