package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/algorithms/dedup"
)

type compactResult struct {
	Input  []int `json:"input" yaml:"input"`
	Limit  int   `json:"limit" yaml:"limit"`
	Length int   `json:"length" yaml:"length"`
	Result []int `json:"result" yaml:"result"`
}

func (r compactResult) Text() string {
	return fmt.Sprintf("New length: %d\nArray after removal: %s", r.Length, joinInts(r.Result))
}

func (a *app) compactCmd() *cobra.Command {
	var (
		limit     int
		unchecked bool
	)
	cmd := &cobra.Command{
		Use:   "compact [ints...]",
		Short: "Keep at most k copies of each value of a sorted list, in place",
		Long: "Compact rewrites a sorted list (ascending or descending) so that no value appears more\n" +
			"than k times, keeping the original order. Unsorted input is rejected unless --no-check\n" +
			"is given. Put negative numbers after --: snippets compact -k 1 -- -3 -3 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompact(args, limit, unchecked)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "k", a.cfg.DefaultLimit, "Maximum copies kept per value")
	cmd.Flags().BoolVar(&unchecked, "no-check", false, "Skip input validation and run the bare algorithm")
	return cmd
}

func (a *app) uniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unique [ints...]",
		Short:   "Remove duplicates from a sorted list, in place",
		Example: "  snippets unique -- -2 -2 0 0 7",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUnique(args)
		},
	}
}

func (a *app) runCompact(args []string, k int, unchecked bool) error {
	nums, err := intsOr(args, 1, 1, 1, 2, 2, 3)
	if err != nil {
		return err
	}
	input := slices.Clone(nums)

	var n int
	if unchecked {
		n = dedup.CompactUnchecked(nums, k)
	} else if n, err = dedup.CompactSorted(nums, k); err != nil {
		a.log.Warn("Rejected input", zap.Ints("input", input), zap.Int("limit", k), zap.Error(err))
		return err
	}
	a.log.Debug("Compacted",
		zap.Int("input_length", len(input)),
		zap.Int("limit", k),
		zap.Bool("unchecked", unchecked),
		zap.Int("length", n),
	)

	return a.out.Render(compactResult{Input: input, Limit: k, Length: n, Result: nums[:n]})
}

func (a *app) runUnique(args []string) error {
	nums, err := intsOr(args, 1, 1, 2, 2, 3, 4, 4, 4, 5)
	if err != nil {
		return err
	}
	input := slices.Clone(nums)

	n, err := dedup.CompactSorted(nums, 1)
	if err != nil {
		a.log.Warn("Rejected input", zap.Ints("input", input), zap.Error(err))
		return err
	}
	a.log.Debug("Removed duplicates", zap.Int("input_length", len(input)), zap.Int("length", n))

	return a.out.Render(compactResult{Input: input, Limit: 1, Length: n, Result: nums[:n]})
}
