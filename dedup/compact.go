// Package dedup compacts adjacency-sorted slices in place so that no value
// appears more than k times.
//
// The classic interview versions are LeetCode 26 (k = 1, see Unique) and
// LeetCode 80 (k = 2). Both rely on equal values being contiguous; the
// checked entry points verify that before touching the slice.
package dedup

import "golang.org/x/exp/constraints"

// CompactSorted is the entry point for ordered element types. It validates
// with the monotonicity scan of CheckSorted, so the whole call is O(n) time
// and allocation-free. Grouped but unsorted input such as {3, 3, 1} is
// rejected; use Compact for that.
func CompactSorted[S ~[]E, E constraints.Ordered](s S, k int) (int, error) {
	if err := checkLimit(k); err != nil {
		return 0, err
	}
	if err := CheckSorted(s); err != nil {
		return 0, err
	}
	return CompactUnchecked(s, k), nil
}

// Compact rewrites s in place so that each run of equal values keeps at most
// k elements, preserving relative order, and returns the new length.
//
// s[:n] holds the result; elements past n are left with stale values. The
// slice is not modified when an error is returned.
//
// Compact accepts any comparable type, and pays for it in the adjacency
// check, which remembers every closed run: O(distinct) extra memory.
// Ordered types should go through CompactSorted.
func Compact[S ~[]E, E comparable](s S, k int) (int, error) {
	if err := checkLimit(k); err != nil {
		return 0, err
	}
	if err := CheckAdjacent(s); err != nil {
		return 0, err
	}
	return CompactUnchecked(s, k), nil
}

// CompactFunc is like Compact but uses eq to decide whether two elements are
// equal. eq must be an equivalence relation. Without hashing, the adjacency
// check compares every new run against every closed one: O(n·runs) time.
func CompactFunc[S ~[]E, E any](s S, k int, eq func(a, b E) bool) (int, error) {
	if err := checkLimit(k); err != nil {
		return 0, err
	}
	if err := CheckAdjacentFunc(s, eq); err != nil {
		return 0, err
	}
	return compact(s, k, eq), nil
}

// Unique keeps a single element of every run. It is Compact(s, 1).
func Unique[S ~[]E, E comparable](s S) (int, error) {
	return Compact(s, 1)
}

// CompactUnchecked is the bare single-pass routine: no validation at all.
//
// The caller guarantees that s is adjacency-sorted and k >= 1. On unsorted
// input the result is wrong but the call never panics; k < 1 behaves like
// k = 1 because the first element of every run is always kept.
func CompactUnchecked[S ~[]E, E comparable](s S, k int) int {
	if len(s) == 0 {
		return 0
	}

	w := 0   // last kept position
	run := 1 // copies of s[w] kept so far
	for i := 1; i < len(s); i++ {
		if s[i] == s[w] {
			if run < k {
				w++
				s[w] = s[i]
				run++
			}
			continue
		}
		w++
		s[w] = s[i]
		run = 1
	}
	return w + 1
}

// compact is CompactUnchecked with a caller-supplied equality.
func compact[S ~[]E, E any](s S, k int, eq func(a, b E) bool) int {
	if len(s) == 0 {
		return 0
	}

	w, run := 0, 1
	for i := 1; i < len(s); i++ {
		if eq(s[i], s[w]) {
			if run < k {
				w++
				s[w] = s[i]
				run++
			}
			continue
		}
		w++
		s[w] = s[i]
		run = 1
	}
	return w + 1
}
