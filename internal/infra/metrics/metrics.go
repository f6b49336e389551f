// Package metrics exposes Prometheus HTTP metrics for the order API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"orderservice/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultPath = "/metrics"

// ServerMetrics holds the HTTP request collectors.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	path    string
	handler http.Handler
}

// NewServerMetrics registers the collectors on a registry owned by this instance.
func NewServerMetrics(cfg *config.Config) *ServerMetrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderservice",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orderservice",
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "route"})

	registry.MustRegister(requests, latency)

	path := defaultPath
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		path = cfg.Metrics.Path
	}

	return &ServerMetrics{
		Requests:  requests,
		LatencyMS: latency,
		path:      path,
		handler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
}

// Path is the route the metrics handler is served on.
func (m *ServerMetrics) Path() string {
	return m.path
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ServerMetrics) Handler() http.Handler {
	return m.handler
}

// Middleware records one count and one latency sample per request, labelled by route pattern.
func (m *ServerMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == m.path {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				// The error handler has not written yet.
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.Requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(c.Request().Method, route).
				Observe(float64(time.Since(start).Microseconds()) / 1000)

			return err
		}
	}
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewServerMetrics),
)
