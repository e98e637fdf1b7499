package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/algorithms/leetcode"
)

type profitResult struct {
	Prices []int `json:"prices" yaml:"prices"`
	Profit int   `json:"profit" yaml:"profit"`
}

func (r profitResult) Text() string { return fmt.Sprintf("MaxProfit: %d", r.Profit) }

type majorityResult struct {
	Input    []int `json:"input" yaml:"input"`
	Majority int   `json:"majority" yaml:"majority"`
	Found    bool  `json:"found" yaml:"found"`
}

func (r majorityResult) Text() string {
	if !r.Found {
		return "No majority element"
	}
	return fmt.Sprintf("Majority element: %d", r.Majority)
}

type rotateResult struct {
	Input  []int `json:"input" yaml:"input"`
	Steps  int   `json:"steps" yaml:"steps"`
	Result []int `json:"result" yaml:"result"`
}

func (r rotateResult) Text() string { return joinInts(r.Result) }

type strstrResult struct {
	Haystack string `json:"haystack" yaml:"haystack"`
	Needle   string `json:"needle" yaml:"needle"`
	Index    int    `json:"index" yaml:"index"`
}

func (r strstrResult) Text() string {
	if r.Index < 0 {
		return "Not found"
	}
	return fmt.Sprintf("Found at index: %d", r.Index)
}

func (a *app) profitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profit [prices...]",
		Short: "Best profit from one buy and one later sell",
		Example: "  snippets profit 7 1 5 3 6 4\n" +
			"  snippets profit -- -5 3 -1 10",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProfit(args)
		},
	}
}

func (a *app) majorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "majority [ints...]",
		Short:   "Element that appears more than n/2 times (Boyer–Moore vote)",
		Example: "  snippets majority -- -1 2 -1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMajority(args)
		},
	}
}

func (a *app) rotateCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "rotate [ints...]",
		Short: "Rotate a list right by k steps, in place",
		Example: "  snippets rotate -k 2 1 2 3 4 5\n" +
			"  snippets rotate -k -1 -- -1 0 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRotate(args, steps)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "k", 3, "Positions to rotate right (negative rotates left)")
	return cmd
}

func (a *app) strstrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strstr [haystack needle]",
		Short: "Index of the first occurrence of needle in haystack",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("want no arguments or exactly 2 (haystack, needle), got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStrStr(args)
		},
	}
}

func (a *app) runProfit(args []string) error {
	prices, err := intsOr(args, 7, 1, 5, 3, 6, 4)
	if err != nil {
		return err
	}
	profit := leetcode.MaxProfit(prices)
	a.log.Debug("Computed profit", zap.Int("days", len(prices)), zap.Int("profit", profit))
	return a.out.Render(profitResult{Prices: prices, Profit: profit})
}

func (a *app) runMajority(args []string) error {
	nums, err := intsOr(args, 2, 2, 3, 3, 3)
	if err != nil {
		return err
	}
	v, ok := leetcode.Majority(nums)
	a.log.Debug("Voted", zap.Int("length", len(nums)), zap.Bool("found", ok))
	return a.out.Render(majorityResult{Input: nums, Majority: v, Found: ok})
}

func (a *app) runRotate(args []string, k int) error {
	nums, err := intsOr(args, 1, 2, 3, 4, 5, 6, 7)
	if err != nil {
		return err
	}
	input := slices.Clone(nums)
	leetcode.Rotate(nums, k)
	a.log.Debug("Rotated", zap.Int("length", len(nums)), zap.Int("steps", k))
	return a.out.Render(rotateResult{Input: input, Steps: k, Result: nums})
}

func (a *app) runStrStr(args []string) error {
	haystack, needle := "hello world", "world"
	if len(args) == 2 {
		haystack, needle = args[0], args[1]
	}
	i := leetcode.StrStr(haystack, needle)
	a.log.Debug("Searched", zap.Int("haystack_length", len(haystack)), zap.Int("index", i))
	return a.out.Render(strstrResult{Haystack: haystack, Needle: needle, Index: i})
}
