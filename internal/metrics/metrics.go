// Package metrics exposes Prometheus collectors for upstream requests,
// rate limiting and cache lookups. A nil *Collector is valid and records
// nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hypixel"

// Collector records client metrics. It is safe for concurrent use.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rateLimited     *prometheus.CounterVec
	retryWait       *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
}

// New registers the collectors on reg. A nil reg returns nil, which
// disables metrics.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		return nil
	}
	factory := promauto.With(reg)

	return &Collector{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of upstream HTTP requests",
			},
			[]string{"api", "endpoint", "status_code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of upstream HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"api", "endpoint"},
		),
		rateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Total number of rate limited responses",
			},
			[]string{"api"},
		),
		retryWait: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "retry_wait_seconds",
				Help:      "Time slept before retrying a rate limited request",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"api"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Total number of cache lookups by result",
			},
			[]string{"cache", "result"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of failed calls by error kind",
			},
			[]string{"api", "kind"},
		),
	}
}

// RecordRequest counts one HTTP round trip.
func (c *Collector) RecordRequest(api, endpoint string, statusCode int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(api, endpoint, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.WithLabelValues(api, endpoint).Observe(duration.Seconds())
}

// RecordRateLimited counts a 429 response.
func (c *Collector) RecordRateLimited(api string) {
	if c == nil {
		return
	}
	c.rateLimited.WithLabelValues(api).Inc()
}

// RecordRetryWait observes a sleep before a retry.
func (c *Collector) RecordRetryWait(api string, wait time.Duration) {
	if c == nil {
		return
	}
	c.retryWait.WithLabelValues(api).Observe(wait.Seconds())
}

// CacheObserver returns a callback for cache.WithObserver labelled name.
func (c *Collector) CacheObserver(name string) func(hit bool) {
	if c == nil {
		return nil
	}
	return func(hit bool) {
		result := "miss"
		if hit {
			result = "hit"
		}
		c.cacheLookups.WithLabelValues(name, result).Inc()
	}
}

// RecordError counts a failed call.
func (c *Collector) RecordError(api, kind string) {
	if c == nil {
		return
	}
	c.errorsTotal.WithLabelValues(api, kind).Inc()
}
