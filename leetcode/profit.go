package leetcode

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point price type.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxProfit returns the best gain from buying once and selling once later
// (LeetCode 121). Zero when prices never rise.
func MaxProfit[T Number](prices []T) T {
	var best T
	if len(prices) == 0 {
		return best
	}
	lowest := prices[0]
	for _, p := range prices[1:] {
		lowest = min(lowest, p)
		best = max(best, p-lowest)
	}
	return best
}
