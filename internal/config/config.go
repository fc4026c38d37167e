/*
PURPOSE:
  Defines the configuration structure and loading logic for pi-runner.
  The three benchmark parameters come from positional CLI arguments; the
  YAML file only carries optional output and safety-net settings.

REQUIREMENTS:
  User-specified:
  - digits, repsPerThread and threads must all be strictly positive.
  - Validation happens before any benchmarking work starts.

  Implementation-discovered:
  - Needs to support YAML parsing for optional settings.
  - A generous upper bound on the completion wait guards against a hung
    run without ever producing partial results.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults.
  - Validate() rejects non-positive benchmark parameters.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (no output files, 1h wait ceiling).

USAGE:
  cfg, err := config.Load("pi_runner.yaml")
  cfg.Digits, cfg.RepsPerThread, cfg.Threads = 5000, 1000, 8
  err = cfg.Validate()

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for a benchmark run.
type Config struct {
	// Benchmark parameters, supplied as positional CLI arguments.
	// Not read from YAML: the command line is the contract.
	Digits        int `yaml:"-"`
	RepsPerThread int `yaml:"-"`
	Threads       int `yaml:"-"`

	// OutputDir is where optional CSV/JSON result files are written.
	OutputDir string `yaml:"output_dir"`
	// CSVFile/JSONFile enable result persistence when non-empty.
	// A plain run writes no files at all.
	CSVFile  string `yaml:"csv_file"`
	JSONFile string `yaml:"json_file"`

	// WaitTimeout bounds the wait for worker completion. It is a deadlock
	// safety net, not a soft timeout: expiry aborts the run with an error.
	WaitTimeout time.Duration `yaml:"wait_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   ".",
		CSVFile:     "",
		JSONFile:    "",
		WaitTimeout: time.Hour,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"runner.yaml", "pi_runner.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the benchmark parameters. It must pass before any
// benchmarking work is performed.
func (c *Config) Validate() error {
	if c.Digits <= 0 {
		return fmt.Errorf("digits must be a positive integer, got %d", c.Digits)
	}
	if c.RepsPerThread <= 0 {
		return fmt.Errorf("repsPerThread must be a positive integer, got %d", c.RepsPerThread)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("threads must be a positive integer, got %d", c.Threads)
	}
	if c.WaitTimeout <= 0 {
		return fmt.Errorf("wait_timeout must be positive, got %s", c.WaitTimeout)
	}
	return nil
}
