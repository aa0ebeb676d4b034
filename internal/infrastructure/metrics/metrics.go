package metrics

import (
	"net/http"
	"time"

	"github.com/partscout/backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the service's Prometheus collectors and implements
// domain.MetricsRecorder.
type Registry struct {
	reg            *prometheus.Registry
	Outcomes       *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
	CacheHits      prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "partscout_lookup_outcomes_total",
		Help: "Resolved lookups by outcome and identifier kind.",
	}, []string{"outcome", "identifier_kind"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "partscout_lookup_duration_seconds",
		Help:    "Wall time of a lookup including retailer fetches.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "partscout_cache_hits_total",
		Help: "Lookups answered from the product cache.",
	})

	r.MustRegister(
		outcomes,
		duration,
		cacheHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:            r,
		Outcomes:       outcomes,
		LookupDuration: duration,
		CacheHits:      cacheHits,
	}
}

func (r *Registry) ObserveLookup(kind domain.IdentifierKind, outcome domain.OutcomeKind, d time.Duration) {
	r.Outcomes.WithLabelValues(string(outcome), string(kind)).Inc()
	r.LookupDuration.WithLabelValues(string(outcome)).Observe(d.Seconds())
}

func (r *Registry) ObserveCacheHit() { r.CacheHits.Inc() }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
