// Package value provides the insertion-ordered mapping used for bindings and
// binding documents.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// OrderedMap is a string-keyed mapping that remembers insertion order.
// Overwriting an existing key keeps its original position.
//
// The zero value is ready to use. OrderedMap is not safe for concurrent
// mutation.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]any)}
}

// OrderedMapOf builds an OrderedMap from alternating key/value arguments.
// It panics if a key is not a string or the argument count is odd.
//
//	m := value.OrderedMapOf("name", "Ann", "age", 31)
func OrderedMapOf(kv ...any) *OrderedMap {
	if len(kv)%2 != 0 {
		panic("value: OrderedMapOf requires key/value pairs")
	}
	m := NewOrderedMap()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("value: OrderedMapOf key %v is not a string", kv[i]))
		}
		m.Set(key, kv[i+1])
	}
	return m
}

// Set inserts or overwrites key.
func (m *OrderedMap) Set(key string, v any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key and whether the key is present.
// A present key may hold nil.
func (m *OrderedMap) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *OrderedMap) Range(fn func(key string, v any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToMap returns a plain map copy. Nested OrderedMaps are converted too.
func (m *OrderedMap) ToMap() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		if nested, ok := m.values[k].(*OrderedMap); ok {
			out[k] = nested.ToMap()
			continue
		}
		out[k] = m.values[k]
	}
	return out
}

// UnmarshalYAML decodes a YAML mapping, keeping document key order.
// Nested mappings become *OrderedMap, sequences become []any.
//
// Merge keys (<<) are expanded: merged entries come first, in the order of
// their source mappings, and explicit keys override them. When several
// mappings are merged, earlier ones win.
func (m *OrderedMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("value: expected yaml mapping, got %s", kindName(node.Kind))
	}
	m.keys = nil
	m.values = make(map[string]any, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		if isMergeKey(node.Content[i]) {
			if err := m.merge(node.Content[i+1]); err != nil {
				return err
			}
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if isMergeKey(node.Content[i]) {
			continue
		}
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("value: decode yaml key: %w", err)
		}
		v, err := fromYAMLNode(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("value: decode yaml key %q: %w", key, err)
		}
		m.Set(key, v)
	}
	return nil
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

// merge copies the entries of a merged mapping, or of each mapping in a
// merged sequence, without overwriting keys already present.
func (m *OrderedMap) merge(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	var sources []*yaml.Node
	switch node.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{node}
	case yaml.SequenceNode:
		sources = node.Content
	default:
		return fmt.Errorf("value: yaml merge expects a mapping, got %s", kindName(node.Kind))
	}

	for _, src := range sources {
		if src.Kind == yaml.AliasNode {
			src = src.Alias
		}
		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("value: yaml merge expects a mapping, got %s", kindName(src.Kind))
		}
		merged := NewOrderedMap()
		if err := merged.UnmarshalYAML(src); err != nil {
			return err
		}
		merged.Range(func(k string, v any) bool {
			if !m.Has(k) {
				m.Set(k, v)
			}
			return true
		})
	}
	return nil
}

func fromYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)
	case yaml.MappingNode:
		nested := NewOrderedMap()
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := fromYAMLNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// UnmarshalJSON decodes a JSON object, keeping document key order.
// Integral numbers decode to int64, other numbers to float64.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("value: decode json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("value: expected json object")
	}
	m.keys = nil
	m.values = make(map[string]any)
	if err := m.decodeObject(dec); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("value: unexpected data after json object")
	}
	return nil
}

// decodeObject reads entries up to and including the closing brace.
func (m *OrderedMap) decodeObject(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("value: decode json key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("value: json key %v is not a string", tok)
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return fmt.Errorf("value: decode json key %q: %w", key, err)
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("value: decode json: %w", err)
	}
	return nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			nested := NewOrderedMap()
			if err := nested.decodeObject(dec); err != nil {
				return nil, err
			}
			return nested, nil
		case '[':
			var items []any
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			if items == nil {
				items = []any{}
			}
			return items, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}

// FromMap builds an OrderedMap from a plain map. Go maps carry no order, so
// keys are inserted in sorted order. Nested map[string]any values are
// converted as well.
func FromMap(src map[string]any) *OrderedMap {
	m := NewOrderedMap()
	for _, k := range slices.Sorted(maps.Keys(src)) {
		if nested, ok := src[k].(map[string]any); ok {
			m.Set(k, FromMap(nested))
			continue
		}
		m.Set(k, src[k])
	}
	return m
}
