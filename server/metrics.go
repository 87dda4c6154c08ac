package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Prometheus collectors, served on /metrics.
var (
	// httpRequests counts requests by route and status code.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphstudio_http_requests_total",
		Help: "HTTP requests handled, by method, route and status.",
	}, []string{"method", "route", "status"})

	// httpDuration tracks request latency by route.
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphstudio_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "route"})

	// rateLimited counts /api/run calls rejected by the limiter.
	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphstudio_http_rate_limited_total",
		Help: "Requests rejected with 429.",
	})
)

// OpenTelemetry instruments; no-ops unless a MeterProvider is installed.
var (
	meter = otel.Meter("graphstudio.server")

	otelRequests, _ = meter.Int64Counter("graphstudio.http.requests",
		metric.WithDescription("HTTP requests handled"))
	otelDuration, _ = meter.Float64Histogram("graphstudio.http.duration",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"))
)

func observeRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, route, code).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())

	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	otelRequests.Add(ctx, 1, attrs)
	otelDuration.Record(ctx, elapsed.Seconds(), attrs)
}
