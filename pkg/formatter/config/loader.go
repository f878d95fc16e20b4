package config

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/randalmurphal/formatter/pkg/formatter/value"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// UnsupportedFormatError is returned by FromFile for an unknown extension.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config file extension %q: %s", e.Extension, e.Path)
}

// FromFile loads configuration from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json, .jsonc, .toml, .env
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	case ".jsonc":
		return FromJSONC(data)
	case ".toml":
		return FromTOML(data)
	case ".env":
		return FromDotenv(data)
	default:
		return Config{}, &UnsupportedFormatError{Path: path, Extension: ext}
	}
}

// FromYAML parses YAML data into a Config, keeping key order.
// An empty document yields an empty Config.
func FromYAML(data []byte) (Config, error) {
	m := value.NewOrderedMap()
	if len(bytes.TrimSpace(data)) == 0 {
		return FromOrdered(m), nil
	}
	if err := yaml.Unmarshal(data, m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return FromOrdered(m), nil
}

// FromJSON parses JSON data into a Config, keeping key order.
func FromJSON(data []byte) (Config, error) {
	m := value.NewOrderedMap()
	if err := m.UnmarshalJSON(data); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return FromOrdered(m), nil
}

// FromJSONC parses JSON with comments and trailing commas.
func FromJSONC(data []byte) (Config, error) {
	cfg, err := FromJSON(jsonc.ToJSON(data))
	if err != nil {
		return Config{}, fmt.Errorf("parse jsonc: %w", err)
	}
	return cfg, nil
}

// FromTOML parses TOML data into a Config.
// The TOML decoder does not report key order, so keys are sorted.
func FromTOML(data []byte) (Config, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse toml: %w", err)
	}
	return New(m), nil
}

// FromDotenv parses KEY=value lines into a flat Config of strings.
// Keys are sorted.
func FromDotenv(data []byte) (Config, error) {
	env, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("parse dotenv: %w", err)
	}
	return FromOrdered(stringMap(env)), nil
}

// LoadBindings reads a binding document. Every top-level key becomes a
// binding name, in document order where the format preserves it.
func LoadBindings(path string) (*value.OrderedMap, error) {
	cfg, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	return cfg.Raw(), nil
}

// LoadEnv reads dotenv files into a flat mapping, later files overriding
// earlier ones. With no files it reads the process environment instead.
func LoadEnv(files ...string) (*value.OrderedMap, error) {
	if len(files) == 0 {
		env := make(map[string]string)
		for _, kv := range os.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok {
				env[k] = v
			}
		}
		return stringMap(env), nil
	}

	env := make(map[string]string)
	for _, file := range files {
		read, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", file, err)
		}
		maps.Copy(env, read)
	}
	return stringMap(env), nil
}

func stringMap(src map[string]string) *value.OrderedMap {
	m := value.NewOrderedMap()
	for _, k := range slices.Sorted(maps.Keys(src)) {
		m.Set(k, src[k])
	}
	return m
}
