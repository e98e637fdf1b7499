package dedup

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// CheckAdjacent reports whether every value's occurrences in s are contiguous.
// It returns a *PreconditionError for the first element that reopens a run
// which already ended.
//
// One pass; memory grows with the number of distinct values.
func CheckAdjacent[S ~[]E, E comparable](s S) error {
	if len(s) < 3 {
		return nil
	}
	closed := make(map[E]struct{})
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			continue
		}
		closed[s[i-1]] = struct{}{}
		if _, seen := closed[s[i]]; seen {
			return &PreconditionError{Index: i, Value: s[i], Reason: reasonReopened}
		}
	}
	return nil
}

// CheckAdjacentFunc is CheckAdjacent for element types without ==.
// It compares each new run against every closed run, so it is quadratic in
// the number of runs.
func CheckAdjacentFunc[S ~[]E, E any](s S, eq func(a, b E) bool) error {
	if len(s) < 3 {
		return nil
	}
	var closed []E
	for i := 1; i < len(s); i++ {
		if eq(s[i], s[i-1]) {
			continue
		}
		closed = append(closed, s[i-1])
		for _, c := range closed {
			if eq(c, s[i]) {
				return &PreconditionError{Index: i, Value: s[i], Reason: reasonReopened}
			}
		}
	}
	return nil
}

// CheckSorted is the cheap check for ordered element types: s must be
// monotonic, ascending or descending, which implies adjacency. Constant
// memory.
func CheckSorted[S ~[]E, E constraints.Ordered](s S) error {
	dir := 0
	for i := 1; i < len(s); i++ {
		c := cmp.Compare(s[i-1], s[i])
		switch {
		case c == 0:
		case dir == 0:
			dir = c
		case c != dir:
			return &PreconditionError{Index: i, Value: s[i], Reason: reasonReversed}
		}
	}
	return nil
}
