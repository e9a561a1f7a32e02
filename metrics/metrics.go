// Package metrics registers the Prometheus collectors a production
// extraction service runs under: parses by locale, entities produced by
// dimension, saturation rounds run per parse, and classifier-load
// failures. The distilled spec is silent on observability, but a
// rule-saturation engine run as a service always carries this, the same
// role pkg/prefetch/metrics.go plays for contextd's pre-fetch engine.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	global *Metrics
	once   sync.Once
)

// Metrics holds every Prometheus collector the engine and its HTTP front
// end update.
type Metrics struct {
	ParsesTotal        *prometheus.CounterVec
	ParseDuration      *prometheus.HistogramVec
	EntitiesTotal      *prometheus.CounterVec
	SaturationRounds   *prometheus.HistogramVec
	ClassifierLoadFail prometheus.Counter
}

// Get returns the process-wide Metrics, registering its collectors with
// the default registry exactly once.
func Get() *Metrics {
	once.Do(func() {
		global = &Metrics{
			ParsesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "duckling_parses_total",
					Help: "Total number of Parse calls, labeled by locale.",
				},
				[]string{"locale"},
			),
			ParseDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "duckling_parse_duration_seconds",
					Help:    "Duration of a single Parse call in seconds, labeled by locale.",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"locale"},
			),
			EntitiesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "duckling_entities_total",
					Help: "Total number of entities produced, labeled by dimension.",
				},
				[]string{"dim"},
			),
			SaturationRounds: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "duckling_saturation_rounds",
					Help:    "Number of saturation rounds a parse ran before reaching a fixpoint or the ceiling.",
					Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
				},
				[]string{"locale"},
			),
			ClassifierLoadFail: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "duckling_classifier_load_failures_total",
					Help: "Total number of times a classifier file failed to load and an empty classifier table was used instead.",
				},
			),
		}
	})
	return global
}

// ObserveParse records one Parse call's outcome: locale, wall-clock
// duration, and the entities it produced.
func (m *Metrics) ObserveParse(localeTag string, seconds float64, dims []string) {
	m.ParsesTotal.WithLabelValues(localeTag).Inc()
	m.ParseDuration.WithLabelValues(localeTag).Observe(seconds)
	for _, d := range dims {
		m.EntitiesTotal.WithLabelValues(d).Inc()
	}
}
