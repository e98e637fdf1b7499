package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/algorithms/sorting"
)

type bubbleResult struct {
	Before []int `json:"before" yaml:"before"`
	After  []int `json:"after" yaml:"after"`
	Passes int   `json:"passes" yaml:"passes"`
}

func (r bubbleResult) Text() string {
	return fmt.Sprintf("Before: %s\nAfter:  %s", joinInts(r.Before), joinInts(r.After))
}

func (a *app) bubbleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "bubble [ints...]",
		Short:   "Bubble sort with early exit",
		Example: "  snippets bubble -- 3 -7 0 -2",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBubble(args)
		},
	}
}

func (a *app) runBubble(args []string) error {
	nums, err := intsOr(args, 5, 3, 8, 4, 2)
	if err != nil {
		return err
	}
	before := slices.Clone(nums)
	passes := sorting.Bubble(nums)
	a.log.Debug("Sorted", zap.Int("length", len(nums)), zap.Int("passes", passes))
	return a.out.Render(bubbleResult{Before: before, After: nums, Passes: passes})
}
