// Package metrics exposes Prometheus collectors for serve mode.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/blockfall/internal/core"
)

const namespace = "blockfall"

// Metrics holds the collectors for all sessions of one server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ActiveSessions prometheus.Gauge
	Sessions       prometheus.Counter
	GamesOver      prometheus.Counter
	PiecesLocked   prometheus.Counter
	LinesCleared   prometheus.Counter
	Clears         *prometheus.CounterVec
	FinalScores    prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry
// together with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of connected player sessions.",
		}),
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Player sessions started.",
		}),
		GamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Rounds ended by a spawn collision.",
		}),
		PiecesLocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_locked_total",
			Help:      "Pieces locked into a board.",
		}),
		LinesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_cleared_total",
			Help:      "Rows removed across all boards.",
		}),
		Clears: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clears_total",
			Help:      "Line clears by number of rows removed at once.",
		}, []string{"rows"}),
		FinalScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   prometheus.ExponentialBuckets(100, 2, 10),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ActiveSessions,
		m.Sessions,
		m.GamesOver,
		m.PiecesLocked,
		m.LinesCleared,
		m.Clears,
		m.FinalScores,
	)
	return m
}

// Handler returns an HTTP handler serving the registry in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SessionStarted records a new player session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.Sessions.Inc()
	m.ActiveSessions.Inc()
}

// SessionEnded records a closed player session.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

// ObserveEvents records the events of one game step. score is the
// score after the step and is sampled on game over.
func (m *Metrics) ObserveEvents(events []core.Event, score int) {
	if m == nil {
		return
	}
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLocked:
			m.PiecesLocked.Inc()
		case core.EventLinesCleared:
			m.LinesCleared.Add(float64(ev.Value))
			m.Clears.WithLabelValues(clearLabel(ev.Value)).Inc()
		case core.EventGameOver:
			m.GamesOver.Inc()
			m.FinalScores.Observe(float64(score))
		}
	}
}

func clearLabel(rows int) string {
	switch rows {
	case 1:
		return "1"
	case 2:
		return "2"
	case 3:
		return "3"
	default:
		return "4"
	}
}
