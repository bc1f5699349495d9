// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the delivery lifecycle.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	deliveryTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_status_transitions_total",
			Help: "Total number of delivery status transitions",
		},
		[]string{"to"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, deliveryTransitionsTotal)
}

// RecordDeliveryTransition counts a committed delivery status transition.
func RecordDeliveryTransition(to string) {
	deliveryTransitionsTotal.WithLabelValues(to).Inc()
}

// Observability is an echo middleware recording request counts and latencies.
// The route pattern, not the raw URL, is used as the path label to keep the
// metric cardinality bounded.
func Observability() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := strconv.Itoa(c.Response().Status)

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path, status).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
