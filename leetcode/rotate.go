package leetcode

// Reverse reverses s in place.
func Reverse[S ~[]E, E any](s S) {
	for lo, hi := 0, len(s)-1; lo < hi; lo, hi = lo+1, hi-1 {
		s[lo], s[hi] = s[hi], s[lo]
	}
}

// Rotate shifts s right by k positions in place (LeetCode 189) using three
// reversals: whole slice, first k, rest. k is taken modulo len(s); a negative
// k rotates left.
func Rotate[S ~[]E, E any](s S, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	Reverse(s)
	Reverse(s[:k])
	Reverse(s[k:])
}
