// Package sorting has the textbook bubble sort, kept for the interview
// question "why is it O(n) on sorted input?".
package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Bubble sorts s ascending in place and returns the number of passes made.
// A pass without swaps ends the sort early, so sorted input costs one pass.
// The sort is stable.
func Bubble[S ~[]E, E constraints.Ordered](s S) int {
	return BubbleFunc(s, cmp.Less[E])
}

// BubbleFunc is Bubble with a caller-supplied strict ordering.
func BubbleFunc[S ~[]E, E any](s S, less func(a, b E) bool) int {
	passes := 0
	for i := 0; i < len(s)-1; i++ {
		passes++
		swapped := false
		for j := 0; j < len(s)-i-1; j++ {
			if less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return passes
}
