package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the frontend's prometheus instruments: inbound page requests
// and outbound backend calls. It implements backend.Observer.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokefront_http_requests_total",
			Help: "Inbound requests handled, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pokefront_http_request_duration_seconds",
			Help:    "Inbound request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokefront_backend_requests_total",
			Help: "Backend API calls, by method, endpoint and status.",
		}, []string{"method", "endpoint", "status"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pokefront_backend_request_duration_seconds",
			Help:    "Backend API call latency, by method and endpoint.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}

	registry.MustRegister(r.httpRequests, r.httpDuration, r.backendRequests, r.backendDuration)
	return r
}

// ObserveRequest records one backend round trip. A zero status means the
// request never produced a response (transport failure).
func (r *Recorder) ObserveRequest(method, endpoint string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.backendRequests.WithLabelValues(method, endpoint, statusLabel(status)).Inc()
	r.backendDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordHTTPRequest records one inbound request.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposes the registry for the /metrics endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func statusLabel(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
