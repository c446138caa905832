package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flat_monitor"

// Metrics holds the collectors recorded by reconciliation passes.
type Metrics struct {
	Registry *prometheus.Registry

	ReconcileRuns     *prometheus.CounterVec
	ReconcileChanges  *prometheus.CounterVec
	ReconcileDuration prometheus.Histogram
	FlatsTracked      *prometheus.GaugeVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ReconcileRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_runs_total",
			Help:      "Reconciliation passes by result (ok, fetch_error, storage_error).",
		}, []string{"result"}),
		ReconcileChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_changes_total",
			Help:      "Changes detected by kind (added, removed, edited).",
		}, []string{"kind"}),
		ReconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation passes, fetch included.",
			Buckets:   prometheus.DefBuckets,
		}),
		FlatsTracked: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flats_tracked",
			Help:      "Flats in the latest reconciled snapshot by category.",
		}, []string{"category"}),
	}

	m.Registry.MustRegister(
		m.ReconcileRuns,
		m.ReconcileChanges,
		m.ReconcileDuration,
		m.FlatsTracked,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRun records the outcome of one pass.
func (m *Metrics) ObserveRun(result string, started time.Time) {
	if m == nil {
		return
	}
	m.ReconcileRuns.WithLabelValues(result).Inc()
	m.ReconcileDuration.Observe(time.Since(started).Seconds())
}

// ObserveChanges records the change counts of one successful pass.
func (m *Metrics) ObserveChanges(added, removed, edited int) {
	if m == nil {
		return
	}
	m.ReconcileChanges.WithLabelValues("added").Add(float64(added))
	m.ReconcileChanges.WithLabelValues("removed").Add(float64(removed))
	m.ReconcileChanges.WithLabelValues("edited").Add(float64(edited))
}

// SetTracked sets the per-category gauge.
func (m *Metrics) SetTracked(category string, count int) {
	if m == nil {
		return
	}
	m.FlatsTracked.WithLabelValues(category).Set(float64(count))
}

// Handler exposes the registry for Fiber.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
