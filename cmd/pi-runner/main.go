/*
PURPOSE:
  Entry point for the pi-runner benchmark.
  Wires interrupt signals into a context and executes the CLI root command.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - An interrupted run must abort without printing a result line.

  Implementation-discovered:
  - Uses cobra for CLI command management.
  - signal.NotifyContext cancels the worker barrier on SIGINT/SIGTERM.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()
  - Depends on: internal/cli package

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.
  - Do not put business logic here.

USAGE:
  go build -o pi-runner ./cmd/pi-runner
  ./pi-runner [digits] [repsPerThread] [threads]

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.

MAINTENANCE:
  - Update when changing the CLI framework or high-level signal handling.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/daryltucker/pi-runner/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
