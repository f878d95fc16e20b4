package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCaptureLogger returns a debug-level JSON logger writing into buf.
func newCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), buf
}

// records decodes every JSON log line in buf.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestEnrichLogger(t *testing.T) {
	logger, buf := newCaptureLogger()

	EnrichLogger(logger, "call-1").Info("hello")

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "call-1", recs[0]["call_id"])
	assert.Nil(t, EnrichLogger(nil, "call-1"))
}

func TestLogFormatLifecycle(t *testing.T) {
	logger, buf := newCaptureLogger()

	LogFormatStart(logger, "c", 3)
	LogUnresolved(logger, "c", "user.name")
	LogFormatComplete(logger, "c", 1.5, 2, 1)

	recs := records(t, buf)
	require.Len(t, recs, 3)

	assert.Equal(t, "format starting", recs[0]["msg"])
	assert.Equal(t, float64(3), recs[0]["placeholders"])

	assert.Equal(t, "placeholder unresolved", recs[1]["msg"])
	assert.Equal(t, "user.name", recs[1]["expression"])

	assert.Equal(t, "format completed", recs[2]["msg"])
	assert.Equal(t, 1.5, recs[2]["duration_ms"])
	assert.Equal(t, float64(2), recs[2]["resolved"])
	assert.Equal(t, float64(1), recs[2]["unresolved"])
	assert.Equal(t, "DEBUG", recs[2]["level"])
}

func TestLogRenderError(t *testing.T) {
	logger, buf := newCaptureLogger()

	LogRenderError(logger, "welcome", errors.New("not found"))

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0]["level"])
	assert.Equal(t, "welcome", recs[0]["template"])
	assert.Equal(t, "not found", recs[0]["error"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		LogFormatStart(nil, "c", 1)
		LogFormatComplete(nil, "c", 0, 0, 0)
		LogUnresolved(nil, "c", "x")
		LogRenderError(nil, "t", errors.New("x"))
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, done(), 1.0)
}
