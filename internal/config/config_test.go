package config

import (
	"testing"

	"finadvisor/internal/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero warning threshold", func(c *Config) { c.Analyzer.ZScoreWarning = 0 }},
		{"negative critical threshold", func(c *Config) { c.Analyzer.ZScoreCritical = -3 }},
		{"critical below warning", func(c *Config) { c.Analyzer.ZScoreWarning = 3; c.Analyzer.ZScoreCritical = 2 }},
		{"zero window", func(c *Config) { c.Analyzer.WindowPeriods = 0 }},
		{"zero relative threshold", func(c *Config) { c.Analyzer.RelativeThreshold = 0 }},
		{"negative horizon", func(c *Config) { c.Projection.DefaultHorizonPeriods = -1 }},
		{"negative ahead margin", func(c *Config) { c.Goals.AheadMarginPeriods = -1 }},
		{"negative behind tolerance", func(c *Config) { c.Goals.BehindTolerance = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !errors.Is(err, errors.ErrConfigInvalid) {
				t.Errorf("expected ErrConfigInvalid in chain, got %v", err)
			}

			var cfgErr *errors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %T", err)
			}
			if cfgErr.Field == "" {
				t.Error("config error must name the offending field")
			}
		})
	}
}

func TestLoadMissingDirCreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analyzer.WindowPeriods != 6 {
		t.Errorf("missing file must fall back to defaults, got window %d", cfg.Analyzer.WindowPeriods)
	}

	// A second load picks up the template written by the first.
	if _, err := Load(dir); err != nil {
		t.Fatalf("reloading after template creation failed: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINADVISOR_LOG_LEVEL", "debug")
	t.Setenv("FINADVISOR_DB_PATH", "/tmp/override.db")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Store.Path != "/tmp/override.db" {
		t.Errorf("expected overridden db path, got %s", cfg.Store.Path)
	}
}
