/*
PURPOSE:
  Benchmark execution logic for the root command.
  Parses and validates the positional arguments, applies flag overrides,
  and prints the single result line.

REQUIREMENTS:
  User-specified:
  - All three arguments must parse as strictly positive base-10 integers
    before any benchmarking work starts.
  - Success prints exactly one line to stdout.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if validation, config load or the engine run fails;
    no result line is printed in any of those cases.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Parse Args -> Load Config -> Override -> Engine.Run -> Print.

USAGE:
  pi-runner 5000 1000 8

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daryltucker/pi-runner/internal/config"
	"github.com/daryltucker/pi-runner/internal/engine"
)

var (
	outputOverride string
	csvOverride    string
	jsonOverride   string
)

func runBenchmark(cmd *cobra.Command, args []string) error {
	// 1. Load Config (optional file; defaults otherwise)
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// 2. Positional arguments. Parse failures abort before any work.
	if cfg.Digits, err = parsePositiveInt("digits", args[0]); err != nil {
		return err
	}
	if cfg.RepsPerThread, err = parsePositiveInt("repsPerThread", args[1]); err != nil {
		return err
	}
	if cfg.Threads, err = parsePositiveInt("threads", args[2]); err != nil {
		return err
	}

	// 3. Overrides
	if outputOverride != "" {
		cfg.OutputDir = outputOverride
	}
	if csvOverride != "" {
		cfg.CSVFile = csvOverride
	}
	if jsonOverride != "" {
		cfg.JSONFile = jsonOverride
	}

	// 4. Execution
	res, err := engine.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	// The one line the benchmark contract promises on stdout.
	fmt.Fprintln(cmd.OutOrStdout(), res.Line())
	return nil
}

func parsePositiveInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: all inputs must be positive integers", name, raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s %d: all inputs must be positive integers", name, v)
	}
	return v, nil
}

func init() {
	rootCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for optional result files")
	rootCmd.Flags().StringVar(&csvOverride, "csv", "", "Write the result record to this CSV file")
	rootCmd.Flags().StringVar(&jsonOverride, "json", "", "Append the result record to this JSON-lines file")
}
