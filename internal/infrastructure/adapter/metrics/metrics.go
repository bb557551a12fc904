package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on /metrics
type Metrics struct {
	registry        *prometheus.Registry
	RequestDuration *prometheus.HistogramVec
	ParseCache      *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "timecalc",
			Name:      "request_duration_seconds",
			Help:      "Time (in seconds) spent serving HTTP requests.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "route", "status_code"}),
		ParseCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "timecalc",
			Name:      "duration_parse_cache_total",
			Help:      "Duration phrase cache lookups by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.RequestDuration, m.ParseCache)
	return m
}

// CacheHit records a duration parse served from cache
func (m *Metrics) CacheHit() {
	m.ParseCache.WithLabelValues("hit").Inc()
}

// CacheMiss records a duration parse that went to the parser
func (m *Metrics) CacheMiss() {
	m.ParseCache.WithLabelValues("miss").Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
