package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics собирает счётчик и длительность HTTP запросов
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics регистрирует метрики HTTP в переданном реестре
func NewMetrics(registry prometheus.Registerer) *Metrics {
	labels := []string{"path", "method", "status"}
	factory := promauto.With(registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			labels,
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			labels,
		),
	}
}

// Handler middleware для учёта запросов
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		path := RouteTemplate(r.URL.Path)
		status := strconv.Itoa(wrapped.statusCode)
		m.requestsTotal.WithLabelValues(path, r.Method, status).Inc()
		m.requestDuration.WithLabelValues(path, r.Method, status).Observe(time.Since(start).Seconds())
	})
}
