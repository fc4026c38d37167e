/*
PURPOSE:
  Defines the core data structures shared across pi-runner.
  These models represent one benchmark run and its aggregate figures.

REQUIREMENTS:
  User-specified:
  - Record elapsed time (ms and s), total calculations, calc/sec.
  - Echo the inputs (digits, reps per thread, threads) in the record.
  - Render the exact single-line stdout report.

  Implementation-discovered:
  - Need JSON tags for the JSON-lines writer.
  - A per-run id makes appended CSV/JSON rows attributable across runs.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output, internal/cli.
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Line() is a fixed printf contract; do not reformat it.

USAGE:
  res := model.NewResult(digits, reps, threads, elapsed)
  fmt.Println(res.Line())

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update CSV/JSON writers when adding fields here.
*/

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result represents the outcome of a single benchmark run.
type Result struct {
	RunID     string    `json:"run_id"`
	Test      string    `json:"test"`
	Timestamp time.Time `json:"timestamp"`

	Digits        int `json:"digits"`
	RepsPerThread int `json:"reps_per_thread"`
	Threads       int `json:"threads"`

	Elapsed           time.Duration `json:"elapsed"`
	TotalTimeMillis   float64       `json:"total_time_ms"`
	TotalTimeSeconds  float64       `json:"total_time_s"`
	TotalCalculations int64         `json:"total_calculations"`
	CalcPerSec        float64       `json:"calc_per_sec"`
}

// NewResult aggregates one timed run into a Result.
func NewResult(digits, repsPerThread, threads int, elapsed time.Duration) *Result {
	totalCalcs := int64(repsPerThread) * int64(threads)
	seconds := elapsed.Seconds()

	return &Result{
		RunID:             uuid.NewString(),
		Test:              "Pi",
		Timestamp:         time.Now(),
		Digits:            digits,
		RepsPerThread:     repsPerThread,
		Threads:           threads,
		Elapsed:           elapsed,
		TotalTimeMillis:   float64(elapsed.Nanoseconds()) / 1e6,
		TotalTimeSeconds:  seconds,
		TotalCalculations: totalCalcs,
		CalcPerSec:        float64(totalCalcs) / seconds,
	}
}

// Line renders the single summary line printed to stdout on success.
func (r *Result) Line() string {
	return fmt.Sprintf(
		"Test:%s, Digits:%d, RepsPerThread:%d, Threads:%d, TotalTime(ms):%.2f, CalcPerSec:%.2f",
		r.Test,
		r.Digits,
		r.RepsPerThread,
		r.Threads,
		r.TotalTimeMillis,
		r.CalcPerSec,
	)
}
