// Package observability provides optional observability for the formatter:
// structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds the format call id to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "5f0c...")
//	enriched.Debug("resolving") // includes call_id
func EnrichLogger(logger *slog.Logger, callID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("call_id", callID))
}

// LogFormatStart logs the start of a format call.
func LogFormatStart(logger *slog.Logger, callID string, placeholders int) {
	if logger == nil {
		return
	}
	logger.Debug("format starting",
		slog.String("call_id", callID),
		slog.Int("placeholders", placeholders),
	)
}

// LogFormatComplete logs a finished format call.
func LogFormatComplete(logger *slog.Logger, callID string, durationMs float64, resolved, unresolved int) {
	if logger == nil {
		return
	}
	logger.Debug("format completed",
		slog.String("call_id", callID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("resolved", resolved),
		slog.Int("unresolved", unresolved),
	)
}

// LogUnresolved logs a placeholder left verbatim in the output.
func LogUnresolved(logger *slog.Logger, callID, expr string) {
	if logger == nil {
		return
	}
	logger.Debug("placeholder unresolved",
		slog.String("call_id", callID),
		slog.String("expression", expr),
	)
}

// LogRenderError logs a catalog render failure.
func LogRenderError(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("template render failed",
		slog.String("template", name),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
