package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query-engine Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "querywise",
			Name:      "queries_total",
			Help:      "Total number of handled queries",
		},
		[]string{"intent", "language"},
	)

	SuggestedCourses = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "querywise",
			Name:      "suggested_courses",
			Help:      "Number of courses suggested per query",
			Buckets:   []float64{0, 1, 2, 3, 5, 10},
		},
	)

	PathLength = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "querywise",
			Name:      "learning_path_length",
			Help:      "Number of courses per assembled learning path",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers query-engine metrics. Must be called
// once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(SuggestedCourses)
	prometheus.MustRegister(PathLength)
	engineMetricsRegistered = true
}

// ObserveQuery counts one handled query by intent and language.
func ObserveQuery(intent, language string) {
	QueriesTotal.WithLabelValues(intent, language).Inc()
}

// ObserveSuggestions records the suggestion count of one query.
func ObserveSuggestions(n int) {
	SuggestedCourses.Observe(float64(n))
}

// ObservePathLength records the length of one assembled path.
func ObservePathLength(n int) {
	PathLength.Observe(float64(n))
}
