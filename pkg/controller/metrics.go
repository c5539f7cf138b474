package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"breachwatch/pkg/logger"
	"breachwatch/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// WithRequestMetrics returns a middleware that records a latency histogram for
// every request through the provided OpenTelemetry meter provider, labelled by
// method and response status. When instrument creation fails the middleware
// degrades to a pass-through.
func WithRequestMetrics(mp metric.MeterProvider, next http.Handler) http.Handler {
	meter := mp.Meter("breachwatch/api")
	hist, err := meter.Float64Histogram("http_request_duration_seconds",
		metric.WithDescription("HTTP request latency in seconds."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		logger.Error(context.Background(), "could not create request duration histogram", zap.Error(err))

		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		hist.Record(r.Context(), time.Since(start).Seconds(),
			metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("status", strconv.Itoa(rec.status)),
			))
	})
}
