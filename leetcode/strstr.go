package leetcode

// StrStr returns the byte index of the first occurrence of needle in
// haystack, or -1 (LeetCode 28). An empty needle matches at 0.
//
// Knuth–Morris–Pratt: O(len(haystack)+len(needle)), one int per needle byte.
func StrStr(haystack, needle string) int {
	m := len(needle)
	if m == 0 {
		return 0
	}
	if m > len(haystack) {
		return -1
	}

	fail := prefixTable(needle)
	j := 0
	for i := 0; i < len(haystack); i++ {
		for j > 0 && haystack[i] != needle[j] {
			j = fail[j-1]
		}
		if haystack[i] == needle[j] {
			j++
		}
		if j == m {
			return i - m + 1
		}
	}
	return -1
}

// prefixTable[i] is the length of the longest proper prefix of p[:i+1] that
// is also a suffix of it.
func prefixTable(p string) []int {
	t := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = t[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		t[i] = k
	}
	return t
}
