package scan

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "numwords"

// Metrics holds the scan counters in a private registry so that several
// scanners in one process do not collide.
type Metrics struct {
	registry *prometheus.Registry

	runs        prometheus.Counter
	files       prometheus.Counter
	matches     prometheus.Counter
	bytes       prometheus.Counter
	skipped     *prometheus.CounterVec
	reconFails  prometheus.Counter
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
}

// NewMetrics creates and registers the scan metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "runs_total",
			Help:      "Completed scan runs.",
		}),
		files: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "files_total",
			Help:      "Files examined, including skipped ones.",
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "matches_total",
			Help:      "Number phrases extracted.",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "bytes_total",
			Help:      "Bytes of text examined.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "skipped_total",
			Help:      "Files skipped, by reason.",
		}, []string{"reason"}),
		reconFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "recon_failures_total",
			Help:      "Files whose segments did not reassemble into the original text.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Wall time of a scan run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time the last scan run completed.",
		}),
	}

	m.registry.MustRegister(
		m.runs, m.files, m.matches, m.bytes, m.skipped,
		m.reconFails, m.duration, m.lastSuccess,
	)
	return m
}

// Registry returns the registry holding the scan metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current metrics to path in the Prometheus text
// exposition format, replacing the file atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

func (m *Metrics) observeRun(r *Report) {
	m.runs.Inc()
	m.files.Add(float64(len(r.Files)))
	m.matches.Add(float64(r.Matches))
	m.bytes.Add(float64(r.Bytes))
	m.reconFails.Add(float64(r.ReconFails))
	for _, fr := range r.Files {
		if fr.Skipped != "" {
			m.skipped.WithLabelValues(fr.Skipped).Inc()
		}
	}
	m.duration.Observe(r.Duration.Seconds())
	m.lastSuccess.Set(float64(r.Started.Add(r.Duration).Unix()))
}
