package goini

import "slices"

// orderedMap is a string keyed map that remembers insertion order.
// Overwriting a key keeps its original position.
type orderedMap[V any] struct {
	keys  []string
	vals  []V
	index map[string]int
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// set stores v under key and reports whether key was already present.
func (m *orderedMap[V]) set(key string, v V) bool {
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return true
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
	return false
}

func (m *orderedMap[V]) delete(key string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.keys = slices.Delete(m.keys, i, i+1)
	m.vals = slices.Delete(m.vals, i, i+1)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

func (m *orderedMap[V]) values() []V {
	return slices.Clone(m.vals)
}
