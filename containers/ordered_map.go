package containers

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// OrderedMap is a map whose iteration visits keys in ascending order.
// Values live in a built-in map; the keys are mirrored in a sorted slice.
type OrderedMap[K constraints.Ordered, V any] struct {
	keys []K
	vals map[K]V
}

func NewOrderedMap[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{vals: make(map[K]V)}
}

// Set stores v under k, replacing any previous value.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.vals[k]; !ok {
		i, _ := slices.BinarySearch(m.keys, k)
		m.keys = slices.Insert(m.keys, i, k)
	}
	m.vals[k] = v
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Delete removes k and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(k K) bool {
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	i, _ := slices.BinarySearch(m.keys, k)
	m.keys = slices.Delete(m.keys, i, i+1)
	return true
}

func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K { return slices.Clone(m.keys) }

// Range calls f for every entry in key order until f returns false.
func (m *OrderedMap[K, V]) Range(f func(k K, v V) bool) {
	for _, k := range m.keys {
		if !f(k, m.vals[k]) {
			return
		}
	}
}
