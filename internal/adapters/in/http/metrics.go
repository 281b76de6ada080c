package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and gateway collectors.
type Metrics struct {
	inFlight   prometheus.Gauge
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	rejections *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_gateway_rejections_total",
				Help: "Requests refused by the auth gateway, by reason.",
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(m.inFlight, m.requests, m.duration, m.rejections)
	return m
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			m.inFlight.Inc()
			defer m.inFlight.Dec()
			start := time.Now()

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			status := strconv.Itoa(ctx.Response().Status)
			path := ctx.Path()
			method := ctx.Request().Method
			m.duration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			m.requests.WithLabelValues(method, path, status).Inc()
			return nil
		}
	}
}
