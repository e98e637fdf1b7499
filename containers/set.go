// Package containers covers the two questions asked about every standard
// container: is iteration ordered, and what does lookup cost.
//
// Set is the hash-based, unordered one (a map with empty values).
// SortedSet and OrderedMap keep their keys ordered, which Go's built-in map
// does not do.
package containers

// Set is the unordered counterpart of SortedSet: same method set, backed by
// a map, so Insert, Erase and Contains are O(1) on average and Values comes
// back in whatever order the runtime iterates.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet returns a set holding vals. The zero Set is not usable.
func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.Insert(v)
	}
	return s
}

// Insert adds v and reports whether it was not already present.
func (s *Set[T]) Insert(v T) bool {
	if _, ok := s.items[v]; ok {
		return false
	}
	s.items[v] = struct{}{}
	return true
}

// Erase removes v and reports whether it was present.
func (s *Set[T]) Erase(v T) bool {
	if _, ok := s.items[v]; !ok {
		return false
	}
	delete(s.items, v)
	return true
}

func (s *Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

func (s *Set[T]) Len() int { return len(s.items) }

// Values returns the elements in no particular order. Two calls on the same
// set may disagree.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	return out
}
