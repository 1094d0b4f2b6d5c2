package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/twopointer/dedup"
	"github.com/katalvlaran/twopointer/internal/fixture"
	"github.com/katalvlaran/twopointer/merge"
	"github.com/katalvlaran/twopointer/palindrome"
	"github.com/katalvlaran/twopointer/threesum"
	"github.com/katalvlaran/twopointer/trace"
	"github.com/katalvlaran/twopointer/twosum"
)

// runCase dispatches c to its routine and renders the result as text.
// Inputs are copied before dedup so a Case can be run more than once.
func runCase(c fixture.Case, tr trace.Tracer) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	switch c.Op {
	case fixture.OpPalindrome:
		return strconv.FormatBool(palindrome.IsPalindromeString(c.Word, palindrome.WithTracer(tr))), nil

	case fixture.OpTwoSum:
		p, err := twosum.TwoSum(c.Numbers, *c.Target, twosum.WithTracer(tr))
		if errors.Is(err, twosum.ErrNotFound) {
			return "not found", nil
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d %d]", p.Left, p.Right), nil

	case fixture.OpMerge:
		out, err := merge.Merge(c.A, c.B, merge.WithTracer(tr))
		if err != nil {
			return "", err
		}
		return fmt.Sprint(out), nil

	case fixture.OpDedup:
		buf := append([]int64(nil), c.Numbers...)
		out, err := dedup.Dedup(buf, dedup.WithTracer(tr))
		if err != nil {
			return "", err
		}
		return fmt.Sprint(out), nil

	case fixture.OpThreeSum:
		opts := []threesum.Option{threesum.WithTracer(tr)}
		if c.Presort {
			opts = append(opts, threesum.WithPresort())
		}
		return fmt.Sprint(threesum.ThreeSum(c.Numbers, *c.Target, opts...)), nil
	}

	return "", fmt.Errorf("%w: %q", fixture.ErrUnknownOp, c.Op)
}

// parseNumbers parses a comma-separated list of integers. Blank input
// yields an empty list; spaces around items are ignored.
func parseNumbers(csv string) ([]int64, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return []int64{}, nil
	}

	parts := strings.Split(csv, ",")
	out := make([]int64, 0, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %d of %q: %w", i, csv, err)
		}
		out = append(out, n)
	}

	return out, nil
}
