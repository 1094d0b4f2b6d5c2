package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/twopointer/internal/fixture"
	"github.com/katalvlaran/twopointer/trace"
)

// loggerFactory builds the command's logger once flags are parsed.
type loggerFactory func(verbose bool) (*zap.Logger, error)

// app carries state shared by all subcommands of one invocation.
type app struct {
	newLogger loggerFactory
	verbose   bool
	logger    *zap.Logger
}

// tracer returns the step observer for this invocation: zap-backed when
// verbose, otherwise Nop.
func (a *app) tracer() trace.Tracer {
	if !a.verbose {
		return trace.Nop
	}

	return trace.NewZap(a.logger)
}

// run executes c and prints "name: result" to cmd's output.
func (a *app) run(cmd *cobra.Command, c fixture.Case) error {
	a.logger.Debug("running case", zap.String("name", c.Name), zap.String("op", string(c.Op)))
	out, err := runCase(c, a.tracer())
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Name, out)

	return nil
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{newLogger: newLogger, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "twoptr",
		Short: "Run two-pointer routines on small sequences",
		Long: `twoptr runs palindrome, two-sum, merge, dedup and three-sum scans
on sequences given as comma-separated numbers.

Use --verbose to log every pointer step.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every pointer step at debug level")

	root.AddCommand(
		newPalindromeCmd(a),
		newTwoSumCmd(a),
		newMergeCmd(a),
		newDedupCmd(a),
		newThreeSumCmd(a),
		newDemoCmd(a),
	)

	return root
}
