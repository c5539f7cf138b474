// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware for the breach monitoring service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"breachwatch/internal/api/handler"
	"breachwatch/internal/config"
	"breachwatch/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// apiSpec contains the embedded OpenAPI specification of the API.
//
//go:embed specs/openapi.yaml
var apiSpec []byte

// Options holds configuration for the HTTP server. All durations configure
// server timeouts; zero values mean the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server will read
	// parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps bundles the services the HTTP layer dispatches to.
type Deps struct {
	handler.Deps
}

// NewServer wires up and returns a configured *http.Server. It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) feeding the request-duration histogram
// - embedded OpenAPI spec and Swagger UI
// - the API routes
// - pprof endpoints for profiling
// The mux is wrapped with metrics, CORS and logging middlewares and a global
// request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// specs file
	mux.HandleFunc("/specs/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(apiSpec)
	})
	// swagger playground
	mux.Handle("/docs/", v5emb.New(
		"Breach Watch",
		"/specs/openapi.yaml",
		"/docs/",
	))

	// api routes
	handler.New(deps.Deps).Register(mux)

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	h := controller.WithRequestMetrics(mp, mux)

	// cors
	h = controller.WithCORS(h)

	// logger
	h = controller.WithLogger(h)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(h, opts.RequestTimeout, `{"status":"INTERNAL","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
