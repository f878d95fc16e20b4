package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the formatter tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("formatter")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartFormatSpan starts a span for one format call.
	StartFormatSpan(ctx context.Context, callID string, placeholders int) (context.Context, trace.Span)

	// StartRenderSpan starts a span for rendering a catalog template.
	StartRenderSpan(ctx context.Context, name string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartFormatSpan starts a span for one format call.
func (m *otelSpanManager) StartFormatSpan(ctx context.Context, callID string, placeholders int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "formatter.format",
		trace.WithAttributes(
			attribute.String("call.id", callID),
			attribute.Int("placeholders", placeholders),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartRenderSpan starts a span for rendering a catalog template.
func (m *otelSpanManager) StartRenderSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "formatter.render",
		trace.WithAttributes(
			attribute.String("template", name),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
