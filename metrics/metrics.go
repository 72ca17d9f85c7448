package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
)

type Metrics struct {
	registry *prometheus.Registry

	// Number of notes currently held by the repository
	NotesStored prometheus.Gauge

	// Repository calls by operation and outcome
	NoteOperations *prometheus.CounterVec

	// HTTP response time by method, route pattern and status
	RequestDuration *prometheus.HistogramVec
}

// New registers the service collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		NotesStored: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "notes_stored",
				Help: "Number of notes currently stored",
			},
		),
		NoteOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notes_operations_total",
				Help: "Repository operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP response time in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.NotesStored,
		m.NoteOperations,
		m.RequestDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeOperation(operation string, found bool) {
	outcome := OutcomeOK
	if !found {
		outcome = OutcomeNotFound
	}
	m.NoteOperations.WithLabelValues(operation, outcome).Inc()
}
