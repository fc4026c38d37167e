/*
PURPOSE:
  Defines the root Cobra command for the pi-runner CLI.
  The benchmark runs directly on the root command: the invocation contract
  is exactly three positional integers (digits, repsPerThread, threads).

REQUIREMENTS:
  User-specified:
  - pi-runner [digits] [repsPerThread] [threads]
  - Invalid arguments produce a usage message on stderr and a non-zero
    exit, with no benchmark run and no result line.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Context flows from main for interrupt handling.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/pi-runner/main.go
  - Calls: internal/engine via run.go

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available everywhere.
  - Keep Run logic in run.go.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/pi-runner/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "pi-runner [digits] [repsPerThread] [threads]",
		Short: "Concurrent Pi-calculation CPU benchmark",
		Long: `A portable CPU benchmark that computes Pi to [digits] decimal places with
fixed-point decimal arithmetic, repeats the calculation [repsPerThread] times
on each of [threads] concurrent workers, and prints a single throughput
summary line to stdout.`,
		Example: `  # 5000 digits, 1000 reps per worker, 8 workers
  pi-runner 5000 1000 8

  # Also persist the result record
  pi-runner 5000 1000 8 --csv results.csv --json results.jsonl -o ./bench`,
		Version: version,
		Args:    cobra.ExactArgs(3),
		RunE:    runBenchmark,
	}
)

var version = "dev"

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pi_runner.yaml)")
}
