package view

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors a view reports into. All methods
// are nil-safe so an unconfigured view costs nothing.
type Metrics struct {
	eventsApplied        *prometheus.CounterVec
	stashDepth           prometheus.Gauge
	phase                prometheus.Gauge
	snapshotSaves        prometheus.Counter
	snapshotSaveFailures prometheus.Counter
}

// NewMetrics creates the view collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		eventsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "projector",
			Name:      "events_applied_total",
			Help:      "Journal events folded into the view, by lifecycle phase.",
		}, []string{"phase"}),
		stashDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "projector",
			Name:      "stash_depth",
			Help:      "Messages buffered while the view rebuilds.",
		}),
		phase: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "projector",
			Name:      "phase",
			Help:      "Current lifecycle phase (0 waiting, 1 recovering, 2 live).",
		}),
		snapshotSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "projector",
			Name:      "snapshot_saves_total",
			Help:      "Snapshots saved successfully.",
		}),
		snapshotSaveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "projector",
			Name:      "snapshot_save_failures_total",
			Help:      "Snapshot saves that failed.",
		}),
	}
	reg.MustRegister(m.eventsApplied, m.stashDepth, m.phase, m.snapshotSaves, m.snapshotSaveFailures)
	return m
}

func (m *Metrics) eventApplied(p Phase) {
	if m == nil {
		return
	}
	m.eventsApplied.WithLabelValues(p.String()).Inc()
}

func (m *Metrics) setStashDepth(n int) {
	if m == nil {
		return
	}
	m.stashDepth.Set(float64(n))
}

func (m *Metrics) setPhase(p Phase) {
	if m == nil {
		return
	}
	m.phase.Set(float64(p))
}

func (m *Metrics) snapshotSaved() {
	if m == nil {
		return
	}
	m.snapshotSaves.Inc()
}

func (m *Metrics) snapshotSaveFailed() {
	if m == nil {
		return
	}
	m.snapshotSaveFailures.Inc()
}
