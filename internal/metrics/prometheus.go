package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "extracker"

// PrometheusRecorder exposes metrics through a Prometheus registry.
type PrometheusRecorder struct {
	usersCreated   prometheus.Counter
	userConflicts  prometheus.Counter
	exercisesAdded prometheus.Counter
	logQueries     prometheus.Histogram
	logEntries     prometheus.Histogram
	rateLimited    prometheus.Counter
}

// NewPrometheus registers the application collectors on reg.
func NewPrometheus(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "users",
			Name:      "created_total",
			Help:      "Number of users created.",
		}),
		userConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "users",
			Name:      "conflicts_total",
			Help:      "Number of user creations rejected for a duplicate username.",
		}),
		exercisesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "exercises",
			Name:      "added_total",
			Help:      "Number of exercises logged.",
		}),
		logQueries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "logs",
			Name:      "query_duration_seconds",
			Help:      "Latency of exercise log queries.",
			Buckets:   prometheus.DefBuckets,
		}),
		logEntries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "logs",
			Name:      "entries_returned",
			Help:      "Number of entries returned per log query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Number of requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		r.usersCreated,
		r.userConflicts,
		r.exercisesAdded,
		r.logQueries,
		r.logEntries,
		r.rateLimited,
	)

	return r
}

// IncUserCreated increments the created users counter.
func (r *PrometheusRecorder) IncUserCreated() {
	r.usersCreated.Inc()
}

// IncUserConflict increments the duplicate username counter.
func (r *PrometheusRecorder) IncUserConflict() {
	r.userConflicts.Inc()
}

// IncExerciseAdded increments the added exercises counter.
func (r *PrometheusRecorder) IncExerciseAdded() {
	r.exercisesAdded.Inc()
}

// ObserveLogQuery records query latency and result size.
func (r *PrometheusRecorder) ObserveLogQuery(duration time.Duration, entries int) {
	r.logQueries.Observe(duration.Seconds())
	r.logEntries.Observe(float64(entries))
}

// IncRateLimited increments the rejected requests counter.
func (r *PrometheusRecorder) IncRateLimited() {
	r.rateLimited.Inc()
}
