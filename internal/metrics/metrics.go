// Package metrics records run outcomes in a private Prometheus registry and
// writes them in the node exporter textfile format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jacoelho/cssq/internal/results"
)

const namespace = "cssq"

type Recorder struct {
	registry *prometheus.Registry

	matches     *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	documents   *prometheus.CounterVec
	parseErrors prometheus.Counter
	runs        prometheus.Counter
	docDuration prometheus.Histogram
	runDuration prometheus.Gauge
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Matched nodes by query or suite case",
		}, []string{"query"}),
		diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Rule sheet diagnostics by level",
		}, []string{"level"}),
		documents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Processed documents by outcome",
		}, []string{"status"}),
		parseErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "Documents that could not be loaded or parsed",
		}),
		runs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed runs",
		}),
		docDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_duration_seconds",
			Help:      "Time to load, parse and match one document",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the most recent run",
		}),
	}
}

// Observe adds a finished run. query labels plain query matches; suite
// matches are labelled with the case name.
func (r *Recorder) Observe(s *results.Summary, query string) {
	r.runs.Inc()
	r.runDuration.Set(s.TotalDuration.Seconds())

	for _, doc := range s.Documents {
		r.docDuration.Observe(doc.Duration.Seconds())

		status := "ok"
		if doc.Failed() {
			status = "failed"
		}
		r.documents.WithLabelValues(status).Inc()

		if doc.Error != nil {
			r.parseErrors.Inc()
			continue
		}
		if s.Mode == results.ModeQuery {
			r.matches.WithLabelValues(query).Add(float64(len(doc.Matches)))
		}
		for _, c := range doc.Cases {
			r.matches.WithLabelValues(c.Name).Add(float64(c.Matches))
		}
		if doc.Report != nil {
			for _, d := range doc.Report.Diagnostics {
				r.diagnostics.WithLabelValues(d.Level.String()).Inc()
			}
		}
	}
}

// WriteFile replaces path with the current values. The write is atomic so
// a collector never reads a partial file.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
