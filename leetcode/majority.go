package leetcode

// MajorityCandidate runs the Boyer–Moore vote (LeetCode 169). The result is
// the majority element only if one exists; use Majority when that is not
// guaranteed. Empty input yields the zero value.
func MajorityCandidate[T comparable](s []T) T {
	var candidate T
	count := 0
	for _, v := range s {
		if count == 0 {
			candidate = v
		}
		if v == candidate {
			count++
		} else {
			count--
		}
	}
	return candidate
}

// Majority returns the element that appears more than len(s)/2 times.
// A second pass confirms the candidate.
func Majority[T comparable](s []T) (T, bool) {
	candidate := MajorityCandidate(s)
	n := 0
	for _, v := range s {
		if v == candidate {
			n++
		}
	}
	if n*2 <= len(s) {
		var zero T
		return zero, false
	}
	return candidate, true
}
