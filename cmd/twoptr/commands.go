package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twopointer/internal/fixture"
)

func newPalindromeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome [word]",
		Short: "Check whether a word reads the same both ways",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, fixture.Case{Name: "palindrome", Op: fixture.OpPalindrome, Word: args[0]})
		},
	}
}

func newTwoSumCmd(a *app) *cobra.Command {
	var target int64
	cmd := &cobra.Command{
		Use:     "twosum [sorted numbers]",
		Short:   "Find two positions in a sorted list summing to --target",
		Example: `  twoptr twosum --target 9 1,2,3,4,5
  twoptr twosum -t -4 -- -3,-1,2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, fixture.Case{Name: "twosum", Op: fixture.OpTwoSum, Numbers: nums, Target: &target})
		},
	}
	cmd.Flags().Int64VarP(&target, "target", "t", 0, "sum to search for")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "merge [sorted a] [sorted b]",
		Short:   "Merge two sorted lists",
		Example: `  twoptr merge 1,3,5 2,4,6
  twoptr merge -- -5,1 -2,0`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			second, err := parseNumbers(args[1])
			if err != nil {
				return err
			}
			return a.run(cmd, fixture.Case{Name: "merge", Op: fixture.OpMerge, A: first, B: second})
		},
	}
}

func newDedupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dedup [sorted numbers]",
		Short:   "Collapse runs of equal values in a sorted list",
		Example: `  twoptr dedup 1,1,2,3,3,3,4
  twoptr dedup -- -3,-3,0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, fixture.Case{Name: "dedup", Op: fixture.OpDedup, Numbers: nums})
		},
	}
}

func newThreeSumCmd(a *app) *cobra.Command {
	var (
		target  int64
		presort bool
	)
	cmd := &cobra.Command{
		Use:   "threesum [numbers]",
		Short: "List triples found by a fixed-index two-pointer scan",
		Long: `threesum fixes each index in turn and scans the rest with two pointers.
The scan assumes every remainder is sorted; pass --presort to sort a copy
of the input first, otherwise some triples may be missed.`,
		Example: `  twoptr threesum --target 10 1,2,3,4,6
  twoptr threesum --target -6 -- -3,-2,-1,0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, fixture.Case{
				Name:    "threesum",
				Op:      fixture.OpThreeSum,
				Numbers: nums,
				Target:  &target,
				Presort: presort,
			})
		},
	}
	cmd.Flags().Int64VarP(&target, "target", "t", 0, "sum to search for")
	cmd.Flags().BoolVar(&presort, "presort", false, "sort a copy of the input before scanning")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every case of a fixture file (default: built-in samples)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := fixture.Default()
			if path != "" {
				var err error
				if set, err = fixture.LoadFile(path); err != nil {
					return err
				}
			}
			for _, c := range set.Cases {
				if err := a.run(cmd, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "fixtures", "f", "", "YAML file with cases to run")

	return cmd
}
