// Package observability wires OpenTelemetry metrics to a Prometheus
// exporter and exposes them over HTTP.
package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprometheus "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// Attribute keys shared across metrics.
var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPRoute      = attribute.Key("http.route")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
	AttrDBOperation    = attribute.Key("db.operation")
	AttrEventType      = attribute.Key("event.type")
	AttrOutcome        = attribute.Key("outcome")
)

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled        bool
	ServiceName    string
	PrometheusPath string
}

// MetricsProvider manages OpenTelemetry metrics
type MetricsProvider struct {
	config        *MetricsConfig
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	logger        *zap.Logger
	registry      *prometheus.Registry
	handler       http.Handler

	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram
	dbOperationsTotal   metric.Int64Counter
	dbOperationDuration metric.Float64Histogram
	webhookEventsTotal  metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(config *MetricsConfig, logger *zap.Logger) (*MetricsProvider, error) {
	if !config.Enabled {
		return &MetricsProvider{
			config: config,
			meter:  otel.Meter(config.ServiceName),
			logger: logger,
		}, nil
	}

	registry := prometheus.NewRegistry()

	exporter, err := otelprometheus.New(
		otelprometheus.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(config.ServiceName)

	mp := &MetricsProvider{
		config:        config,
		meterProvider: meterProvider,
		meter:         meter,
		logger:        logger,
		registry:      registry,
		handler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	if err := mp.initMetrics(); err != nil {
		return nil, err
	}

	logger.Info("OpenTelemetry metrics initialized",
		zap.String("service", config.ServiceName),
		zap.String("prometheus_path", config.PrometheusPath),
	)

	return mp, nil
}

// initMetrics initializes common metrics
func (mp *MetricsProvider) initMetrics() error {
	var err error

	mp.httpRequestsTotal, err = mp.meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return err
	}

	mp.httpRequestDuration, err = mp.meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	mp.dbOperationsTotal, err = mp.meter.Int64Counter(
		"db_operations_total",
		metric.WithDescription("Total number of database operations"),
	)
	if err != nil {
		return err
	}

	mp.dbOperationDuration, err = mp.meter.Float64Histogram(
		"db_operation_duration_seconds",
		metric.WithDescription("Database operation duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	mp.webhookEventsTotal, err = mp.meter.Int64Counter(
		"webhook_events_total",
		metric.WithDescription("Total number of webhook events received"),
	)
	if err != nil {
		return err
	}

	return nil
}

// RecordHTTPRequest records an HTTP request metric
func (mp *MetricsProvider) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if mp.httpRequestsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(path),
		AttrHTTPStatusCode.Int(statusCode),
	)

	mp.httpRequestsTotal.Add(ctx, 1, attrs)
	mp.httpRequestDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordDBOperation records a database operation metric
func (mp *MetricsProvider) RecordDBOperation(ctx context.Context, operation string, success bool, duration time.Duration) {
	if mp.dbOperationsTotal == nil {
		return
	}

	status := "ok"
	if !success {
		status = "error"
	}

	attrs := metric.WithAttributes(
		AttrDBOperation.String(operation),
		AttrOutcome.String(status),
	)

	mp.dbOperationsTotal.Add(ctx, 1, attrs)
	mp.dbOperationDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordWebhookEvent records a received webhook event and its outcome
func (mp *MetricsProvider) RecordWebhookEvent(ctx context.Context, eventType, outcome string) {
	if mp.webhookEventsTotal == nil {
		return
	}
	mp.webhookEventsTotal.Add(ctx, 1, metric.WithAttributes(
		AttrEventType.String(eventType),
		AttrOutcome.String(outcome),
	))
}

// Handler returns an HTTP handler for Prometheus metrics
func (mp *MetricsProvider) Handler() http.Handler {
	if mp.handler != nil {
		return mp.handler
	}
	return http.NotFoundHandler()
}

// Meter returns the meter for creating custom metrics
func (mp *MetricsProvider) Meter() metric.Meter {
	return mp.meter
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}
