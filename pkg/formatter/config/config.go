package config

import (
	"github.com/randalmurphal/formatter/pkg/formatter/value"
)

// Config wraps a decoded document for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
//
// Config keeps the document's key order, so mappings extracted from it
// can seed bindings in the order they were written.
type Config struct {
	data *value.OrderedMap
}

// New creates a Config from the given map.
// Keys are ordered alphabetically since Go maps carry no order.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		return Config{data: value.NewOrderedMap()}
	}
	return Config{data: value.FromMap(data)}
}

// FromOrdered creates a Config that keeps m's key order.
// If m is nil, an empty Config is returned.
func FromOrdered(m *value.OrderedMap) Config {
	if m == nil {
		m = value.NewOrderedMap()
	}
	return Config{data: m}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data.Get(key)
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	v, ok := c.data.Get(key)
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int (only if no fractional part)
func (c Config) Int(key string, defaultVal int) int {
	v, ok := c.data.Get(key)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// StringSlice returns the string slice for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - []string: used directly
//   - []any: each element must be a string
//   - string: a single-element slice
func (c Config) StringSlice(key string, defaultVal []string) []string {
	v, ok := c.data.Get(key)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case []string:
		return val
	case string:
		return []string{val}
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result = append(result, s)
		}
		return result
	}
	return defaultVal
}

// Mapping returns the nested mapping for key, or nil if missing or not a mapping.
// A nested map[string]any is converted with alphabetical key order.
func (c Config) Mapping(key string) *value.OrderedMap {
	v, ok := c.data.Get(key)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case *value.OrderedMap:
		return val
	case map[string]any:
		return value.FromMap(val)
	}
	return nil
}

// Sub returns the nested mapping for key as a Config.
// Missing or non-mapping values yield an empty Config.
func (c Config) Sub(key string) Config {
	return FromOrdered(c.Mapping(key))
}

// Any returns the raw value for key, or defaultVal if missing.
func (c Config) Any(key string, defaultVal any) any {
	v, ok := c.data.Get(key)
	if !ok {
		return defaultVal
	}
	return v
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	return c.data.Has(key)
}

// Raw returns the underlying ordered mapping.
// The returned mapping should not be modified.
func (c Config) Raw() *value.OrderedMap {
	if c.data == nil {
		return value.NewOrderedMap()
	}
	return c.data
}
