package formatter

import (
	"log/slog"

	"github.com/randalmurphal/formatter/pkg/formatter/binding"
	"github.com/randalmurphal/formatter/pkg/formatter/observability"
	"github.com/randalmurphal/formatter/pkg/formatter/value"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithBindings associates every pair of m, in m's order.
//
// Example:
//
//	f := New(WithBindings(value.OrderedMapOf("user", user, "site", site)))
func WithBindings(m *value.OrderedMap) Option {
	return func(f *Formatter) {
		f.bindings.AssociateAll(m)
	}
}

// WithBinding associates a single name with v.
//
// Example:
//
//	f := New(WithBinding("user", map[string]any{"name": "Ann"}))
func WithBinding(name string, v any) Option {
	return func(f *Formatter) {
		f.bindings.Associate(name, v)
	}
}

// WithRegistry makes the Formatter resolve against r instead of a private
// registry. Bindings from earlier options are copied into r.
func WithRegistry(r *binding.Registry) Option {
	return func(f *Formatter) {
		if r == nil {
			return
		}
		f.bindings.Range(func(name string, v any) bool {
			r.Associate(name, v)
			return true
		})
		f.bindings = r
	}
}

// WithLogger sets the structured logger.
// Unresolved placeholders are logged at debug level.
//
// Default: nil (no logging)
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
//
// Example:
//
//	f := New(WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(f *Formatter) {
		if m != nil {
			f.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used for tracing.
//
// Default: observability.NoopSpanManager{}
func WithSpanManager(sm observability.SpanManager) Option {
	return func(f *Formatter) {
		if sm != nil {
			f.spans = sm
		}
	}
}
