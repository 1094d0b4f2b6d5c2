// Command twoptr runs the two-pointer routines from the command line.
//
//	twoptr palindrome racecar
//	twoptr twosum --target 9 1,2,3,4,5
//	twoptr merge 1,3,5 2,4,6
//	twoptr dedup 1,1,2,3,3,3,4
//	twoptr threesum --target 10 1,2,3,4,6
//	twoptr demo --fixtures cases.yaml
//
// With --verbose every pointer step is logged through zap at debug level.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd(buildLogger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildLogger returns a production JSON logger on stderr, at debug level
// when verbose is set.
func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
