package containers

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// SortedSet keeps unique values in ascending order in a slice. Lookups are
// O(log n) binary searches; inserts and erases shift elements, O(n).
type SortedSet[T constraints.Ordered] struct {
	items []T
}

func NewSortedSet[T constraints.Ordered](vals ...T) *SortedSet[T] {
	s := &SortedSet[T]{}
	for _, v := range vals {
		s.Insert(v)
	}
	return s
}

// Insert adds v and reports whether it was not already present.
func (s *SortedSet[T]) Insert(v T) bool {
	i, found := slices.BinarySearch(s.items, v)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, v)
	return true
}

// Erase removes v and reports whether it was present.
func (s *SortedSet[T]) Erase(v T) bool {
	i, found := slices.BinarySearch(s.items, v)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *SortedSet[T]) Contains(v T) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

func (s *SortedSet[T]) Len() int { return len(s.items) }

// Values returns a copy of the elements in ascending order.
func (s *SortedSet[T]) Values() []T { return slices.Clone(s.items) }

func (s *SortedSet[T]) Min() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

func (s *SortedSet[T]) Max() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}
