package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal *prometheus.CounterVec
	cacheTotal   *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	latestValue  *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econpulse_fetches_total",
				Help: "Total number of source fetches by provider",
			},
			[]string{"source", "indicator"},
		),
		cacheTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econpulse_cache_lookups_total",
				Help: "Cache lookups by outcome",
			},
			[]string{"outcome", "kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latestValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "econpulse_latest_value",
				Help: "Latest observed value per entity and indicator",
			},
			[]string{"entity", "indicator"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "econpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records a completed source fetch.
func (r *Recorder) RecordFetch(source, indicator string) {
	r.fetchesTotal.WithLabelValues(source, indicator).Inc()
}

// RecordCacheHit records a cache hit.
func (r *Recorder) RecordCacheHit(kind string) {
	r.cacheTotal.WithLabelValues("hit", kind).Inc()
}

// RecordCacheMiss records a cache miss.
func (r *Recorder) RecordCacheMiss(kind string) {
	r.cacheTotal.WithLabelValues("miss", kind).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordLatestValue records the newest observed value for a series.
func (r *Recorder) RecordLatestValue(entity, indicator string, value float64) {
	r.latestValue.WithLabelValues(entity, indicator).Set(value)
}
