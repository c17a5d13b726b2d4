package discovery

import "iter"

// Map is a string-keyed map that remembers insertion order.
// Iteration order is the declaration order of the source document, which is
// visible in generated output, so every consumer must iterate with All or Keys.
//
// The zero value is an empty map ready to use. A nil *Map behaves as an empty
// read-only map.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap returns an empty map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{}
}

// Set stores value under key. Overwriting an existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All yields key/value pairs in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
