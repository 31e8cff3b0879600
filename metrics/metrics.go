package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "starwars",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "starwars",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "starwars",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	favoriteMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "starwars",
			Subsystem: "favorites",
			Name:      "mutations_total",
			Help:      "Favorite add/remove attempts by target kind and outcome.",
		},
		[]string{"kind", "action", "outcome"},
	)

	orphanFavorites = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "starwars",
			Subsystem: "favorites",
			Name:      "orphans",
			Help:      "Favorite rows whose user or target no longer exists, as of the last audit.",
		},
		[]string{"kind"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		favoriteMutations,
		orphanFavorites,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RequestStarted() {
	httpInFlight.Inc()
}

// RequestFinished records a handled request. path should be the route
// template so ids don't blow up label cardinality.
func RequestFinished(method, path string, status int, elapsed time.Duration) {
	httpInFlight.Dec()
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func RecordFavoriteMutation(kind, action, outcome string) {
	favoriteMutations.WithLabelValues(kind, action, outcome).Inc()
}

func SetOrphanFavorites(kind string, n int) {
	orphanFavorites.WithLabelValues(kind).Set(float64(n))
}
