package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// Metrics exposes Prometheus collectors for the service. All record
// methods tolerate a nil receiver so collaborators stay optional.
type Metrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorTotal      *prometheus.CounterVec
	classifications *prometheus.CounterVec
}

// NewMetrics registers collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by path, method and status code.",
		}, []string{"path", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errorTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Request errors by path, method and error code.",
		}, []string{"path", "method", "code"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guarantee_classifications_total",
			Help: "Completed guarantee classification runs by outcome.",
		}, []string{"guarantee_status", "billing_classification"}),
	}

	registry.MustRegister(m.requestTotal, m.requestDuration, m.errorTotal, m.classifications)
	return m
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errorTotal.WithLabelValues(path, method, code).Inc()
}

// RecordClassification counts a completed classification run.
func (m *Metrics) RecordClassification(status domain.GuaranteeStatus, billing domain.BillingClassification) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(string(status), string(billing)).Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	var h http.Handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(h)
}
