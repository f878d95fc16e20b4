package benchmarks

import (
	"context"
	"strings"
	"testing"

	"github.com/randalmurphal/formatter/pkg/formatter"
	"github.com/randalmurphal/formatter/pkg/formatter/value"
)

// Order is a struct binding reached through fields and methods.
type Order struct {
	ID       string
	Total    float64
	Customer *Customer
}

// Customer is nested inside Order.
type Customer struct {
	First string
	Last  string
}

// FullName is reached as a zero-argument method.
func (c Customer) FullName() string { return c.First + " " + c.Last }

// BenchmarkFormat_NoPlaceholders measures the fast path.
func BenchmarkFormat_NoPlaceholders(b *testing.B) {
	f := newFormatter()
	msg := "Your order has shipped and will arrive soon."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(msg)
	}
}

// BenchmarkFormat_MapPath measures resolution through nested maps.
func BenchmarkFormat_MapPath(b *testing.B) {
	f := newFormatter()
	msg := "Hi {user.profile.name}, welcome to {site.title}."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(msg)
	}
}

// BenchmarkFormat_StructPath measures reflection-based resolution.
func BenchmarkFormat_StructPath(b *testing.B) {
	f := newFormatter()
	msg := "Order {order.id} for {order.customer.fullName}: {order.total}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(msg)
	}
}

// BenchmarkFormat_Operators measures fallback evaluation.
func BenchmarkFormat_Operators(b *testing.B) {
	f := newFormatter()
	msg := "{user.nick|friend} {user.nick?+user.profile.name} {missing.path|none}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(msg)
	}
}

// BenchmarkFormat_Unresolved measures messages that keep placeholders.
func BenchmarkFormat_Unresolved(b *testing.B) {
	f := newFormatter()
	msg := "{a.b} {c.d} {e.f} {g.h}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(msg)
	}
}

// BenchmarkFormat_LongMessage measures many placeholders in one message.
func BenchmarkFormat_LongMessage(b *testing.B) {
	f := newFormatter()
	msg := strings.Repeat("{user.profile.name} ordered {order.id}. ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(msg)
	}
}

// BenchmarkFormatContext_Parallel measures concurrent formatting.
func BenchmarkFormatContext_Parallel(b *testing.B) {
	f := newFormatter()
	ctx := context.Background()
	msg := "Hi {user.profile.name}, order {order.id} totals {order.total}."

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = f.FormatContext(ctx, msg)
		}
	})
}

// BenchmarkFormatMap measures formatting a nested document.
func BenchmarkFormatMap(b *testing.B) {
	f := newFormatter()
	doc := map[string]any{
		"subject": "Order {order.id}",
		"body":    []any{"Dear {order.customer.first},", "Total: {order.total}"},
		"footer":  map[string]any{"site": "{site.title}"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FormatMap(doc)
	}
}

// Helper functions

func newFormatter() *formatter.Formatter {
	return formatter.New(
		formatter.WithBindings(value.OrderedMapOf(
			"user", map[string]any{
				"nick":    nil,
				"profile": map[string]any{"name": "Ann"},
			},
			"site", value.OrderedMapOf("title", "Example"),
			"order", &Order{
				ID:       "A-1001",
				Total:    99.95,
				Customer: &Customer{First: "Ann", Last: "Lee"},
			},
		)),
	)
}
