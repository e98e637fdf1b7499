package main

import (
	"github.com/spf13/cobra"
)

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every snippet on its sample input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAll()
		},
	}
}

func (a *app) runAll() error {
	demos := []struct {
		title string
		run   func() error
	}{
		{"Compact — keep at most k copies (LeetCode 80)", func() error { return a.runCompact(nil, a.cfg.DefaultLimit, false) }},
		{"Unique — remove duplicates (LeetCode 26)", func() error { return a.runUnique(nil) }},
		{"MaxProfit — one buy, one sell (LeetCode 121)", func() error { return a.runProfit(nil) }},
		{"Majority — Boyer–Moore vote (LeetCode 169)", func() error { return a.runMajority(nil) }},
		{"Rotate — three reversals (LeetCode 189)", func() error { return a.runRotate(nil, 3) }},
		{"StrStr — KMP search (LeetCode 28)", func() error { return a.runStrStr(nil) }},
		{"Bubble sort — early exit", func() error { return a.runBubble(nil) }},
		{"Containers — ordered vs unordered", a.runContainers},
		{"Factories — abstract factory, factory method", func() error { return a.runFactory("") }},
	}

	for _, d := range demos {
		if err := a.out.Section(d.title); err != nil {
			return err
		}
		if err := d.run(); err != nil {
			return err
		}
	}
	return nil
}
