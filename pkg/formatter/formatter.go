package formatter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/formatter/pkg/formatter/binding"
	"github.com/randalmurphal/formatter/pkg/formatter/observability"
	"github.com/randalmurphal/formatter/pkg/formatter/scan"
	"github.com/randalmurphal/formatter/pkg/formatter/value"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Formatter substitutes placeholders in messages with values reached
// from its named bindings.
//
// A Formatter is safe for concurrent use. Associate may run while other
// goroutines format; each Format call sees the bindings at the moment a
// placeholder is resolved.
type Formatter struct {
	bindings *binding.Registry
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	tracing  bool
}

// New creates a Formatter configured by opts.
//
// Example:
//
//	f := formatter.New(
//	    formatter.WithBinding("user", map[string]any{"name": "Ann"}),
//	    formatter.WithLogger(slog.Default()),
//	)
//	f.Format("Hi {user.name}!") // "Hi Ann!"
func New(opts ...Option) *Formatter {
	f := &Formatter{
		bindings: binding.New(),
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(f)
	}
	_, noop := f.spans.(observability.NoopSpanManager)
	f.tracing = !noop
	return f
}

// Format is a convenience for a one-off formatter over bindings.
// Binding names are associated in sorted order.
func Format(message string, bindings map[string]any) string {
	return New(WithBindings(value.FromMap(bindings))).Format(message)
}

// Associate binds name to v. A later call with the same name replaces
// the earlier value.
func (f *Formatter) Associate(name string, v any) {
	f.bindings.Associate(name, v)
}

// Bindings returns the registry the Formatter resolves against.
func (f *Formatter) Bindings() *binding.Registry {
	return f.bindings
}

// Format replaces every resolvable placeholder in message. Placeholders
// that cannot be resolved are left verbatim.
func (f *Formatter) Format(message string) string {
	return f.FormatContext(context.Background(), message)
}

// FormatMessage is Format for an optional message: nil in, nil out.
func (f *Formatter) FormatMessage(message *string) *string {
	if message == nil {
		return nil
	}
	out := f.Format(*message)
	return &out
}

// FormatContext is Format with a context carrying trace spans.
//
// Placeholders are found in the original message and resolved in order of
// first appearance, identical ones once. All of them are then replaced in
// a single pass, so text coming from a binding is never scanned for
// placeholders. Every call is counted by the metrics recorder, including
// calls on messages without placeholders.
func (f *Formatter) FormatContext(ctx context.Context, message string) string {
	start := time.Now()
	exprs := scan.Distinct(message)
	if len(exprs) == 0 {
		f.metrics.RecordFormat(ctx, time.Since(start), 0, 0)
		return message
	}

	var callID string
	if f.logger != nil || f.tracing {
		callID = fmt.Sprintf("fmt-%s", uuid.New().String()[:8])
	}
	observability.LogFormatStart(f.logger, callID, len(exprs))

	var span trace.Span
	if f.tracing {
		ctx, span = f.spans.StartFormatSpan(ctx, callID, len(exprs))
		defer f.spans.EndSpanWithError(span, nil)
	}

	texts := make(map[string]string, len(exprs))
	unresolved := 0
	for _, expr := range exprs {
		text, ok := f.evaluate(expr)
		if !ok {
			unresolved++
			observability.LogUnresolved(f.logger, callID, expr)
			f.spans.AddSpanEvent(ctx, "placeholder.unresolved",
				attribute.String("expression", expr))
			continue
		}
		texts[expr] = text
	}

	out := scan.Replace(message, texts)

	duration := time.Since(start)
	f.metrics.RecordFormat(ctx, duration, len(texts), unresolved)
	observability.LogFormatComplete(f.logger, callID, float64(duration.Microseconds())/1000, len(texts), unresolved)
	return out
}

// FormatAll formats each message in order.
func (f *Formatter) FormatAll(messages []string) []string {
	if messages == nil {
		return nil
	}
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = f.Format(m)
	}
	return out
}

// FormatMap returns a copy of v with every string formatted. It walks
// map[string]any, []any and *value.OrderedMap recursively; other values
// are returned as they are.
func (f *Formatter) FormatMap(v any) any {
	switch val := v.(type) {
	case string:
		return f.Format(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = f.FormatMap(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = f.FormatMap(item)
		}
		return out
	case []string:
		return f.FormatAll(val)
	case *value.OrderedMap:
		if val == nil {
			return val
		}
		out := value.NewOrderedMap()
		val.Range(func(k string, item any) bool {
			out.Set(k, f.FormatMap(item))
			return true
		})
		return out
	default:
		return v
	}
}

// Unresolved returns the distinct placeholder expressions of message that
// the current bindings cannot resolve, in order of first appearance.
func (f *Formatter) Unresolved(message string) []string {
	var missing []string
	for _, expr := range scan.Distinct(message) {
		if _, ok := f.evaluate(expr); !ok {
			missing = append(missing, expr)
		}
	}
	return missing
}
