package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/nmt/internal/scoring"
)

// Metrics holds the API collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	attempts  prometheus.Counter
	scores    prometheus.Histogram
	poolFetch *prometheus.CounterVec
}

// NewMetrics registers the nmt collectors plus the Go runtime collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nmt_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nmt_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nmt_attempts_recorded_total",
			Help: "Exam attempts recorded",
		}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nmt_attempt_score",
			Help:    "Scores of recorded attempts",
			Buckets: prometheus.LinearBuckets(4, 4, scoring.MaxScore/4),
		}),
		poolFetch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nmt_pool_fetch_total",
				Help: "Question pool fetches by result",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(
		m.requests, m.duration, m.attempts, m.scores, m.poolFetch,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(method, route string, status int, elapsed time.Duration) {
	if status == 0 {
		status = http.StatusOK
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) observeAttempt(score int) {
	m.attempts.Inc()
	m.scores.Observe(float64(score))
}

func (m *Metrics) observePoolFetch(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.poolFetch.WithLabelValues(result).Inc()
}
