package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "osteria",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method and status class.",
		},
		[]string{"method", "status"},
	)

	pageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "osteria",
			Name:      "page_views_total",
			Help:      "Count of analytics tracking events by outcome.",
		},
		[]string{"outcome"},
	)

	closureExpansions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "osteria",
			Name:      "closure_expansions_total",
			Help:      "Count of closure calendar expansions served.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, pageViews, closureExpansions)
	})
}

func IncHTTPRequest(method, status string) {
	httpRequests.WithLabelValues(method, status).Inc()
}

// IncPageView records a tracking event outcome: "tracked", "bot", "invalid"
// or "error".
func IncPageView(outcome string) {
	pageViews.WithLabelValues(outcome).Inc()
}

func IncClosureExpansion() {
	closureExpansions.Inc()
}
