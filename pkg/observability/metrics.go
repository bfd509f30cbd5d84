package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travigo", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travigo", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	AIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travigo", Name: "ai_requests_total", Help: "Outbound AI completion requests."},
		[]string{"provider", "outcome"}, // outcome: ok|upstream_error|parse_error
	)
	AILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travigo", Name: "ai_request_duration_seconds",
			Help:    "Outbound AI completion duration seconds.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"provider"},
	)
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travigo", Name: "itinerary_generations_total", Help: "Itinerary generation attempts by outcome."},
		[]string{"outcome"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, AIRequests, AILatency, Generations)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveAI(provider, outcome string, dur time.Duration) {
	AIRequests.WithLabelValues(provider, outcome).Inc()
	AILatency.WithLabelValues(provider).Observe(dur.Seconds())
}

func ObserveGeneration(outcome string) {
	Generations.WithLabelValues(outcome).Inc()
}
