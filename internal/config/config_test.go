package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Digits = 100
	cfg.RepsPerThread = 10
	cfg.Threads = 4
	return cfg
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero digits", func(c *Config) { c.Digits = 0 }},
		{"negative digits", func(c *Config) { c.Digits = -5 }},
		{"zero reps", func(c *Config) { c.RepsPerThread = 0 }},
		{"negative reps", func(c *Config) { c.RepsPerThread = -1 }},
		{"zero threads", func(c *Config) { c.Threads = 0 }},
		{"negative threads", func(c *Config) { c.Threads = -8 }},
		{"zero wait timeout", func(c *Config) { c.WaitTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected nil err but got: %v", err)
	}
	if cfg.WaitTimeout != time.Hour {
		t.Errorf("WaitTimeout = %s, want 1h", cfg.WaitTimeout)
	}
	if cfg.CSVFile != "" || cfg.JSONFile != "" {
		t.Errorf("default config must not enable output files: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("output_dir: ./bench\ncsv_file: results.csv\njson_file: results.jsonl\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected nil err but got: %v", err)
	}
	if cfg.OutputDir != "./bench" {
		t.Errorf("OutputDir = %s", cfg.OutputDir)
	}
	if cfg.CSVFile != "results.csv" || cfg.JSONFile != "results.jsonl" {
		t.Errorf("output files not loaded: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.WaitTimeout != time.Hour {
		t.Errorf("WaitTimeout = %s, want default 1h", cfg.WaitTimeout)
	}
}

func TestLoad_DefaultFileSearch(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.WriteFile("runner.yaml", []byte("csv_file: found.csv\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected nil err but got: %v", err)
	}
	if cfg.CSVFile != "found.csv" {
		t.Errorf("default-file search did not pick up runner.yaml: %+v", cfg)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, []byte("csv_file: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
