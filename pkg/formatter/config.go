package formatter

import (
	"fmt"

	"github.com/randalmurphal/formatter/pkg/formatter/config"
	"github.com/randalmurphal/formatter/pkg/formatter/observability"
)

// Config keys read by FromConfig.
const (
	ConfigBindings     = "bindings"
	ConfigBindingsFile = "bindings_file"
	ConfigEnvBinding   = "env_binding"
	ConfigEnvFiles     = "env_files"
	ConfigMetrics      = "metrics"
	ConfigTracing      = "tracing"
)

// FromConfig builds a Formatter from decoded configuration. opts are
// applied after the configured bindings, so they can add or override
// bindings and replace the logger, metrics or span manager.
//
// Recognized keys:
//
//	bindings_file: path to a binding document, associated first
//	bindings:      inline mapping of binding name to value
//	env_binding:   name to bind the environment mapping under
//	env_files:     dotenv files for env_binding; the process
//	               environment when empty
//	metrics:       true enables OpenTelemetry metrics
//	tracing:       true enables OpenTelemetry tracing
//
// Example:
//
//	cfg, err := config.FromFile("formatter.yaml")
//	if err != nil {
//	    return err
//	}
//	f, err := formatter.FromConfig(cfg, formatter.WithLogger(logger))
func FromConfig(cfg config.Config, opts ...Option) (*Formatter, error) {
	var base []Option

	if path := cfg.String(ConfigBindingsFile, ""); path != "" {
		doc, err := config.LoadBindings(path)
		if err != nil {
			return nil, fmt.Errorf("load bindings: %w", err)
		}
		base = append(base, WithBindings(doc))
	}

	if inline := cfg.Mapping(ConfigBindings); inline != nil {
		base = append(base, WithBindings(inline))
	}

	if name := cfg.String(ConfigEnvBinding, ""); name != "" {
		env, err := config.LoadEnv(cfg.StringSlice(ConfigEnvFiles, nil)...)
		if err != nil {
			return nil, fmt.Errorf("load env binding: %w", err)
		}
		base = append(base, WithBinding(name, env))
	}

	if cfg.Bool(ConfigMetrics, false) {
		base = append(base, WithMetrics(observability.NewMetricsRecorder()))
	}
	if cfg.Bool(ConfigTracing, false) {
		base = append(base, WithSpanManager(observability.NewSpanManager()))
	}

	return New(append(base, opts...)...), nil
}
