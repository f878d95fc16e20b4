/*
Package formatter interpolates named values into message text.

# Overview

A Formatter holds named bindings and replaces placeholders written in
braces with text reached from them. Placeholders it cannot resolve stay in
the output exactly as written, so a formatted message never loses
information.

# Basic Usage

	f := formatter.New(
	    formatter.WithBinding("user", map[string]any{"name": "Ann"}),
	)

	f.Format("Hi {user.name}!")      // "Hi Ann!"
	f.Format("Hi {user.email}!")     // "Hi {user.email}!"
	f.Format("Hi {guest.name|you}!") // "Hi you!"

# Placeholder Grammar

	{path}            the value at path
	{path|fallback}   fallback when path is missing, null, false, zero or ""
	{path?fallback}   fallback when path is null; missing stays verbatim
	{path?+other}     a leading + makes the fallback a path too

A path is a dot-separated list of segments. The first segment names a
binding; each further segment is a mapping key, a struct field, or a
zero-argument method. See package resolve for the lookup rules.

Expressions are split at the first operator character, and both sides
must be non-empty. Every occurrence of identical placeholder text is
replaced with the same result.

# Resolution Outcomes

Each path resolves to one of three outcomes:

	Absent  the path cannot be followed; the placeholder stays verbatim
	Null    the path ends on nil; it is substituted as ""
	Value   the path ends on a value; it is substituted as text

The | operator treats Absent, Null and falsy values alike. The ? operator
only replaces Null.

# Observability

Formatting never returns errors. Unresolved placeholders can be reported
through a logger, OpenTelemetry metrics and trace events:

	f := formatter.New(
	    formatter.WithLogger(slog.Default()),
	    formatter.WithMetrics(observability.NewMetricsRecorder()),
	    formatter.WithSpanManager(observability.NewSpanManager()),
	)
	out := f.FormatContext(ctx, msg)

Use Unresolved to list the expressions a message still needs.

# Configuration

FromConfig builds a Formatter from a YAML, JSON, JSONC, TOML or dotenv
document loaded with package config:

	cfg, err := config.FromFile("formatter.yaml")
	if err != nil {
	    return err
	}
	f, err := formatter.FromConfig(cfg)

# Thread Safety

A Formatter may be shared between goroutines. Associate and Format may run
concurrently, but a message formatted while bindings change can mix old and
new values; serialize the two when that matters.
*/
package formatter
