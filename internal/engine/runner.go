/*
PURPOSE:
  High-level runner that orchestrates the benchmark protocol:
  warm-up -> timed concurrent phase -> aggregation -> optional persistence.

REQUIREMENTS:
  User-specified:
  - Warm-up of max(1, floor(0.1 * repsPerThread)) sequential calculations,
    excluded from all reported metrics.
  - Exactly `threads` workers, each repeating the Pi calculation
    `repsPerThread` times; full barrier before the end timestamp.
  - Cancellation aborts the run with an error and no partial result.

  Implementation-discovered:
  - errgroup gives the scoped spawn-join we need: every worker is joined
    on every exit path, the first error cancels the siblings.
  - The completion wait carries a generous ceiling (config.WaitTimeout)
    purely as a deadlock safety net.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/pi, internal/config, internal/model, internal/output

ERROR HANDLING:
  - Cancellation/timeout during the barrier wait surfaces as a wrapped
    error; no Result is returned in that case.
  - Writer failures surface as errors after the result is computed.

IMPLEMENTATION RULES:
  - Start timestamp immediately before spawning workers; end timestamp
    immediately after the barrier returns.
  - Workers share no mutable state.

USAGE:
  res, err := engine.Run(ctx, cfg)

RELATED FILES:
  - internal/pi/pi.go - the work unit repeated by every worker.

MAINTENANCE:
  - Keep the warm-up rule and timing boundaries fixed; they define the
    comparability of reported numbers across machines.
*/

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/pi-runner/internal/config"
	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/output"
	"github.com/daryltucker/pi-runner/internal/pi"
)

// Run executes the full benchmark protocol and returns the aggregate result.
func Run(ctx context.Context, cfg *config.Config) (*model.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 1. Warm-up Phase
	// Sequential, untimed. Lets caches and the scheduler settle before the
	// measured interval starts.
	warmUpReps := cfg.RepsPerThread / 10
	if warmUpReps < 1 {
		warmUpReps = 1
	}
	output.Logger.Info("Warming up", "digits", cfg.Digits, "reps", warmUpReps)
	for i := 0; i < warmUpReps; i++ {
		pi.Compute(cfg.Digits)
	}

	// 2. Timed Phase
	output.Logger.Info("Starting timed phase",
		"digits", cfg.Digits,
		"threads", cfg.Threads,
		"reps_per_thread", cfg.RepsPerThread,
	)
	elapsed, err := timedPhase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("benchmark aborted: %w", err)
	}

	// 3. Aggregation
	res := model.NewResult(cfg.Digits, cfg.RepsPerThread, cfg.Threads, elapsed)
	output.Logger.Info("Benchmark complete",
		"total_calculations", res.TotalCalculations,
		"total_time_ms", fmt.Sprintf("%.2f", res.TotalTimeMillis),
		"calc_per_sec", fmt.Sprintf("%.2f", res.CalcPerSec),
	)

	if err := persist(cfg, res); err != nil {
		return nil, err
	}

	return res, nil
}

// timedPhase runs threads x repsPerThread calculations and returns the
// wall-clock time from just before worker spawn to the return of the full
// barrier.
func timedPhase(ctx context.Context, cfg *config.Config) (time.Duration, error) {
	// Deadlock safety net. A healthy run returns as soon as all workers
	// finish; expiry is an error, never a partial result.
	ctx, cancel := context.WithTimeout(ctx, cfg.WaitTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	start := time.Now()
	for i := 0; i < cfg.Threads; i++ {
		g.Go(func() error {
			for j := 0; j < cfg.RepsPerThread; j++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				pi.Compute(cfg.Digits)
			}
			return nil
		})
	}

	// Full barrier: all workers joined on every exit path.
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// persist writes the result to the optional CSV/JSON files. A default run
// has neither configured and writes nothing.
func persist(cfg *config.Config, res *model.Result) error {
	if cfg.CSVFile == "" && cfg.JSONFile == "" {
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	if cfg.CSVFile != "" {
		path := filepath.Join(cfg.OutputDir, cfg.CSVFile)
		w, err := output.NewCSVWriter(path)
		if err != nil {
			return fmt.Errorf("failed to init CSV writer at %s: %w", path, err)
		}
		defer w.Close()
		if err := w.Write(res); err != nil {
			return fmt.Errorf("failed to write result to CSV: %w", err)
		}
		output.Logger.Info("Wrote CSV result", "path", path)
	}

	if cfg.JSONFile != "" {
		path := filepath.Join(cfg.OutputDir, cfg.JSONFile)
		w, err := output.NewJSONWriter(path)
		if err != nil {
			return fmt.Errorf("failed to init JSON writer at %s: %w", path, err)
		}
		defer w.Close()
		if err := w.Write(res); err != nil {
			return fmt.Errorf("failed to write result to JSON: %w", err)
		}
		output.Logger.Info("Wrote JSON result", "path", path)
	}

	return nil
}
