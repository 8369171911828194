package brewfather

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records upstream request counts and latency. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics registers the upstream metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brewfather_upstream_requests_total",
				Help: "Total number of requests sent to the Brewfather API",
			},
			[]string{"method", "endpoint", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "brewfather_upstream_request_duration_seconds",
				Help:    "Brewfather API request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "brewfather_upstream_requests_in_flight",
				Help: "Current number of Brewfather API requests awaiting a response",
			},
		),
	}
}

func (m *Metrics) start() func(method, endpoint string, status int) {
	if m == nil {
		return func(string, string, int) {}
	}
	begin := time.Now()
	m.inFlight.Inc()
	return func(method, endpoint string, status int) {
		m.inFlight.Dec()
		code := "error"
		if status > 0 {
			code = strconv.Itoa(status)
		}
		m.requests.WithLabelValues(method, endpoint, code).Inc()
		m.duration.WithLabelValues(method, endpoint).Observe(time.Since(begin).Seconds())
	}
}

// endpointLabel collapses ids out of a request path so label cardinality
// stays bounded: "inventory/hops/abc" becomes "inventory/hops/{id}".
func endpointLabel(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i := 1; i < len(segments); i++ {
		switch segments[i-1] {
		case string(Fermentables), string(Hops), string(Yeasts), string(Miscs), pathBatches, pathRecipes:
			segments[i] = "{id}"
		}
	}
	return strings.Join(segments, "/")
}
