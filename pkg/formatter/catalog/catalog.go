package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/formatter/pkg/formatter"
	"github.com/randalmurphal/formatter/pkg/formatter/config"
	"github.com/randalmurphal/formatter/pkg/formatter/observability"
	"github.com/randalmurphal/formatter/pkg/formatter/value"
)

// Catalog renders named templates from a Store with a Formatter.
type Catalog struct {
	store     Store
	formatter *formatter.Formatter
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used to report render failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder for renders.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *Catalog) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpanManager sets the span manager for renders.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(c *Catalog) {
		if sm != nil {
			c.spans = sm
		}
	}
}

// New creates a Catalog that renders templates from store with f.
//
// Example:
//
//	store, err := catalog.NewSQLiteStore("templates.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	c := catalog.New(store, f)
//	msg, err := c.Render(ctx, "welcome")
func New(store Store, f *formatter.Formatter, opts ...Option) *Catalog {
	c := &Catalog{
		store:     store,
		formatter: f,
		metrics:   observability.NoopMetrics{},
		spans:     observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the underlying template store.
func (c *Catalog) Store() Store {
	return c.store
}

// Render loads the template name and formats it. Unresolvable
// placeholders stay verbatim, as with Formatter.Format.
// Returns ErrNotFound if no template has that name.
func (c *Catalog) Render(ctx context.Context, name string) (string, error) {
	return c.render(ctx, name, false)
}

// RenderStrict is Render, but fails with *UnresolvedError when the
// template has placeholders the bindings cannot resolve.
func (c *Catalog) RenderStrict(ctx context.Context, name string) (string, error) {
	return c.render(ctx, name, true)
}

func (c *Catalog) render(ctx context.Context, name string, strict bool) (out string, err error) {
	ctx, span := c.spans.StartRenderSpan(ctx, name)
	defer func() {
		c.spans.EndSpanWithError(span, err)
		c.metrics.RecordRender(ctx, name, err)
		if err != nil {
			observability.LogRenderError(c.logger, name, err)
		}
	}()

	body, err := c.store.Load(name)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	if strict {
		if missing := c.formatter.Unresolved(body); len(missing) > 0 {
			return "", &UnresolvedError{Name: name, Expressions: missing}
		}
	}

	return c.formatter.FormatContext(ctx, body), nil
}

// Import saves every template of m in order and returns how many were
// saved. Every value must be a string; the first other value stops the
// import with an error.
func (c *Catalog) Import(m *value.OrderedMap) (int, error) {
	saved := 0
	var importErr error
	m.Range(func(name string, v any) bool {
		body, ok := v.(string)
		if !ok {
			importErr = fmt.Errorf("import template %s: expected string, got %T", name, v)
			return false
		}
		if err := c.store.Save(name, body); err != nil {
			importErr = fmt.Errorf("import template %s: %w", name, err)
			return false
		}
		saved++
		return true
	})
	return saved, importErr
}

// ImportFile loads a template document in any format config.FromFile
// accepts and imports it.
func (c *Catalog) ImportFile(path string) (int, error) {
	doc, err := config.LoadBindings(path)
	if err != nil {
		return 0, err
	}
	return c.Import(doc)
}
