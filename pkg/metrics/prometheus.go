package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetches   *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	records   *prometheus.GaugeVec
	latency   *prometheus.HistogramVec
	pages     *prometheus.HistogramVec
}

// New registers the acquisition collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godsignal",
				Subsystem: "acquisition",
				Name:      "fetches_total",
				Help:      "Upstream fetches by resource and outcome (live or fallback)",
			},
			[]string{"resource", "outcome"},
		),
		fallbacks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godsignal",
				Subsystem: "acquisition",
				Name:      "fallbacks_total",
				Help:      "Fallback substitutions by resource and failure kind",
			},
			[]string{"resource", "kind"},
		),
		records: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "godsignal",
				Subsystem: "acquisition",
				Name:      "records",
				Help:      "Records returned by the last live fetch of a resource",
			},
			[]string{"resource"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "godsignal",
				Subsystem: "acquisition",
				Name:      "duration_seconds",
				Help:      "Duration of single upstream fetches",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 6},
			},
			[]string{"resource", "outcome"},
		),
		pages: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "godsignal",
				Subsystem: "acquisition",
				Name:      "page_duration_seconds",
				Help:      "Wall time to acquire every resource of a page",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 6},
			},
			[]string{"page"},
		),
	}
}

// RecordFetch records one upstream call; outcome is "live" or "fallback".
func (r *Recorder) RecordFetch(resource, outcome string, seconds float64) {
	r.fetches.WithLabelValues(resource, outcome).Inc()
	r.latency.WithLabelValues(resource, outcome).Observe(seconds)
}

// RecordFallback records why a resource fell back.
func (r *Recorder) RecordFallback(resource, kind string) {
	r.fallbacks.WithLabelValues(resource, kind).Inc()
}

// RecordRecords records how many records a live fetch produced.
func (r *Recorder) RecordRecords(resource string, n int) {
	r.records.WithLabelValues(resource).Set(float64(n))
}

// RecordPage records how long a whole page took to acquire.
func (r *Recorder) RecordPage(page string, seconds float64) {
	r.pages.WithLabelValues(page).Observe(seconds)
}
