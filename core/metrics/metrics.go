package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the sync collectors. A nil *Metrics records nothing.
type Metrics struct {
	SyncRuns      *prometheus.CounterVec
	SyncDuration  prometheus.Histogram
	Upserts       *prometheus.CounterVec
	FieldDefaults *prometheus.CounterVec
	LastSuccess   prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SyncRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_sync_runs_total",
			Help: "Catalog sync runs by outcome.",
		}, []string{"outcome"}),
		SyncDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_sync_duration_seconds",
			Help:    "Wall time of catalog sync runs.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
		Upserts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_products_upserted_total",
			Help: "Products written by sync, by action.",
		}, []string{"action"}),
		FieldDefaults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_field_defaults_total",
			Help: "Cells and attributes that degraded to their default value.",
		}, []string{"field"}),
		LastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_sync_last_success_timestamp_seconds",
			Help: "Unix time of the last successful sync.",
		}),
	}
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.SyncRuns.WithLabelValues(outcome).Inc()
	m.SyncDuration.Observe(d.Seconds())
}

// AddUpserts records written products.
func (m *Metrics) AddUpserts(created, updated int) {
	if m == nil {
		return
	}
	m.Upserts.WithLabelValues("create").Add(float64(created))
	m.Upserts.WithLabelValues("update").Add(float64(updated))
}

// FieldDefaulted records one degrade-to-default occurrence.
func (m *Metrics) FieldDefaulted(field string) {
	if m == nil {
		return
	}
	m.FieldDefaults.WithLabelValues(field).Inc()
}

// MarkSuccess stamps the last successful sync.
func (m *Metrics) MarkSuccess(t time.Time) {
	if m == nil {
		return
	}
	m.LastSuccess.Set(float64(t.Unix()))
}

// Handler serves the collectors gathered from g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
