package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOperands(t *testing.T) {
	tests := []struct {
		name         string
		expr         string
		sep          string
		wantPrimary  string
		wantFallback string
		wantOK       bool
	}{
		{"simple", "a|b", "|", "a", "b", true},
		{"first separator wins", "a|b|c", "|", "a", "b|c", true},
		{"no separator", "a.b", "|", "", "", false},
		{"empty primary", "|b", "|", "", "", false},
		{"empty fallback", "a|", "|", "", "", false},
		{"only separator", "|", "|", "", "", false},
		{"question mark", "a?+b.c", "?", "a", "+b.c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, fallback, ok := splitOperands(tt.expr, tt.sep)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPrimary, primary)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

func TestEvaluate_AlternativeOnEmpty(t *testing.T) {
	f := New(
		WithBinding("v", map[string]any{
			"text":  "x",
			"empty": "",
			"zero":  0,
			"fzero": 0.0,
			"false": false,
			"true":  true,
			"nil":   nil,
			"list":  []any{},
			"str0":  "0",
		}),
		WithBinding("admin", map[string]any{"name": "Root"}),
	)

	tests := []struct {
		expr     string
		want     string
		resolved bool
	}{
		{"v.text|d", "x", true},
		{"v.empty|d", "d", true},
		{"v.zero|d", "d", true},
		{"v.fzero|d", "d", true},
		{"v.false|d", "d", true},
		{"v.true|d", "true", true},
		{"v.nil|d", "d", true},
		{"v.list|d", "d", true},
		{"v.str0|d", "0", true},
		{"v.missing|d", "d", true},
		{"nobody|d", "d", true},
		{"v.empty|+admin.name", "Root", true},
		{"v.empty|+admin.missing", "", false},
		{"v.text|+admin.missing", "x", true},
		{"v.empty|literal with spaces", "literal with spaces", true},
		{"v.empty|a.b", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			text, ok := f.evaluate(tt.expr)
			assert.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

type queue struct{ pending int }

func (q queue) Len() int       { return q.pending }
func (q queue) String() string { return "queue" }

func TestEvaluate_AlternativeOnEmpty_ObjectsWithLen(t *testing.T) {
	f := New(
		WithBinding("q", queue{}),
		WithBinding("buf", &bytes.Buffer{}),
		WithBinding("items", map[string]any{}),
	)

	tests := []struct {
		expr string
		want string
	}{
		{"q|d", "queue"},
		{"buf|d", ""},
		{"items|d", "d"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			text, ok := f.evaluate(tt.expr)
			assert.True(t, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestEvaluate_AlternativeOnNull(t *testing.T) {
	f := New(
		WithBinding("v", map[string]any{
			"text":  "x",
			"empty": "",
			"zero":  0,
			"false": false,
			"nil":   nil,
		}),
		WithBinding("admin", map[string]any{"name": "Root", "nick": nil}),
	)

	tests := []struct {
		expr     string
		want     string
		resolved bool
	}{
		{"v.text?d", "x", true},
		{"v.empty?d", "", true},
		{"v.zero?d", "0", true},
		{"v.false?d", "false", true},
		{"v.nil?d", "d", true},
		{"v.missing?d", "", false},
		{"v.nil?+admin.name", "Root", true},
		{"v.nil?+admin.nick", "", true},
		{"v.nil?+admin.missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			text, ok := f.evaluate(tt.expr)
			assert.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestEvaluate_PlainPath(t *testing.T) {
	f := New(
		WithBinding("user", map[string]any{"name": "Ann", "age": 41, "nick": nil}),
		WithBinding("+user", "marked"),
	)

	tests := []struct {
		expr     string
		want     string
		resolved bool
	}{
		{"user.name", "Ann", true},
		{"user.age", "41", true},
		{"user.nick", "", true},
		{"user.email", "", false},
		{"user.name.first", "", false},
		{"", "", false},
		{"+user", "marked", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			text, ok := f.evaluate(tt.expr)
			assert.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

// TestEvaluate_OperatorPriority verifies | is tried before ? and that a
// malformed split falls through to the next operator.
func TestEvaluate_OperatorPriority(t *testing.T) {
	f := New(
		WithBinding("a", nil),
		WithBinding("b?c", "odd"),
	)

	text, ok := f.evaluate("a?x|y")
	assert.True(t, ok)
	assert.Equal(t, "y", text, "| splits first, primary a?x is absent")

	text, ok = f.evaluate("b?c|z")
	assert.True(t, ok)
	assert.Equal(t, "odd", text)

	text, ok = f.evaluate("a|")
	assert.False(t, ok, "empty fallback disqualifies |, a|  as a path is absent")
	assert.Empty(t, text)

	text, ok = f.evaluate("a?")
	assert.False(t, ok)
	assert.Empty(t, text)
}
