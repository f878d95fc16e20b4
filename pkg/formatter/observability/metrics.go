package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records formatter metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordFormat records a completed format call with its placeholder counts.
	RecordFormat(ctx context.Context, duration time.Duration, resolved, unresolved int)

	// RecordRender records a catalog render of the named template.
	RecordRender(ctx context.Context, name string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	formatCalls   metric.Int64Counter
	formatLatency metric.Float64Histogram
	resolved      metric.Int64Counter
	unresolved    metric.Int64Counter
	renders       metric.Int64Counter
	renderErrors  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("formatter")

	formatCalls, err := meter.Int64Counter("formatter.format.calls",
		metric.WithDescription("Number of format calls"),
	)
	if err != nil {
		return nil, err
	}

	formatLatency, err := meter.Float64Histogram("formatter.format.latency_ms",
		metric.WithDescription("Format call latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	resolved, err := meter.Int64Counter("formatter.placeholder.resolved",
		metric.WithDescription("Number of placeholders substituted"),
	)
	if err != nil {
		return nil, err
	}

	unresolved, err := meter.Int64Counter("formatter.placeholder.unresolved",
		metric.WithDescription("Number of placeholders left verbatim"),
	)
	if err != nil {
		return nil, err
	}

	renders, err := meter.Int64Counter("formatter.catalog.renders",
		metric.WithDescription("Number of catalog template renders"),
	)
	if err != nil {
		return nil, err
	}

	renderErrors, err := meter.Int64Counter("formatter.catalog.errors",
		metric.WithDescription("Number of failed catalog template renders"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		formatCalls:   formatCalls,
		formatLatency: formatLatency,
		resolved:      resolved,
		unresolved:    unresolved,
		renders:       renders,
		renderErrors:  renderErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordFormat records a format call.
func (m *otelMetrics) RecordFormat(ctx context.Context, duration time.Duration, resolved, unresolved int) {
	m.formatCalls.Add(ctx, 1)
	m.formatLatency.Record(ctx, float64(duration.Microseconds())/1000)
	if resolved > 0 {
		m.resolved.Add(ctx, int64(resolved))
	}
	if unresolved > 0 {
		m.unresolved.Add(ctx, int64(unresolved))
	}
}

// RecordRender records a catalog render.
func (m *otelMetrics) RecordRender(ctx context.Context, name string, err error) {
	attrs := metric.WithAttributes(attribute.String("template", name))
	m.renders.Add(ctx, 1, attrs)
	if err != nil {
		m.renderErrors.Add(ctx, 1, attrs)
	}
}
