package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the Prometheus registry and the portal's collectors.
type MetricsService struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	storeOps      *prometheus.HistogramVec
	storeFailures *prometheus.CounterVec
	submissions   *prometheus.CounterVec
	notifications prometheus.Counter
}

// NewMetricsService registers the collectors on a fresh registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	s := &MetricsService{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeOps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_store_operation_duration_seconds",
			Help:    "Key-value store operation latency by operation and key.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"op", "key"}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_store_operation_failures_total",
			Help: "Failed key-value store operations by operation and key.",
		}, []string{"op", "key"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_submissions_total",
			Help: "Approval workflow outcomes.",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_notifications_delivered_total",
			Help: "Notifications appended to the admin feed.",
		}),
	}

	registry.MustRegister(
		s.httpRequests,
		s.httpDuration,
		s.storeOps,
		s.storeFailures,
		s.submissions,
		s.notifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "portal_goroutines",
			Help: "Current goroutine count.",
		}, func() float64 { return float64(runtime.NumGoroutine()) }),
	)
	return s
}

// ObserveHTTPRequest records one handled request.
func (s *MetricsService) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	s.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveStoreOperation records one key-value store call.
func (s *MetricsService) ObserveStoreOperation(op, key string, duration time.Duration, err error) {
	s.storeOps.WithLabelValues(op, key).Observe(duration.Seconds())
	if err != nil {
		s.storeFailures.WithLabelValues(op, key).Inc()
	}
}

// RecordSubmission counts an approval workflow outcome: queued, published,
// approved or rejected.
func (s *MetricsService) RecordSubmission(outcome string) {
	s.submissions.WithLabelValues(outcome).Inc()
}

// RecordNotification counts a delivered feed entry.
func (s *MetricsService) RecordNotification() {
	s.notifications.Inc()
}

// Handler exposes the registry for the /metrics endpoint.
func (s *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
