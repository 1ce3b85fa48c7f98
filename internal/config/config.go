// Package config provides configuration management for the analytics engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"finadvisor/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Analyzer   AnalyzerConfig   `mapstructure:"analyzer"`
	Projection ProjectionConfig `mapstructure:"projection"`
	Goals      GoalConfig       `mapstructure:"goals"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Store      StoreConfig      `mapstructure:"store"`
}

// AnalyzerConfig holds spending pattern analyzer configuration.
type AnalyzerConfig struct {
	ZScoreWarning     float64 `mapstructure:"alert_zscore_warning"`
	ZScoreCritical    float64 `mapstructure:"alert_zscore_critical"`
	WindowPeriods     int     `mapstructure:"rolling_window_periods"`
	RelativeThreshold float64 `mapstructure:"relative_threshold"`
}

// ProjectionConfig holds investment projection configuration.
type ProjectionConfig struct {
	DefaultHorizonPeriods int `mapstructure:"default_horizon_periods"`
}

// GoalConfig holds goal tracker configuration.
type GoalConfig struct {
	AheadMarginPeriods  int     `mapstructure:"ahead_margin_periods"`
	BehindTolerance     float64 `mapstructure:"behind_tolerance"`
	AssumedAnnualReturn float64 `mapstructure:"assumed_annual_return"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// StoreConfig holds report history store configuration.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Default returns the default engine configuration. Library callers that do
// not use a config file start from here.
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			ZScoreWarning:     2.0,
			ZScoreCritical:    3.0,
			WindowPeriods:     6,
			RelativeThreshold: 0.5,
		},
		Projection: ProjectionConfig{
			DefaultHorizonPeriods: 60,
		},
		Goals: GoalConfig{
			AheadMarginPeriods:  2,
			BehindTolerance:     0.15,
			AssumedAnnualReturn: 0.08,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    true,
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    filepath.Join(DefaultConfigDir(), "finadvisor.db"),
		},
	}
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/finadvisor"
	}
	return filepath.Join(home, ".config", "finadvisor")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// Config file not found, write a template for next time.
		if werr := createTemplateConfig(configDir); werr != nil {
			return nil, fmt.Errorf("creating config template: %w", werr)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("analyzer.alert_zscore_warning", cfg.Analyzer.ZScoreWarning)
	v.SetDefault("analyzer.alert_zscore_critical", cfg.Analyzer.ZScoreCritical)
	v.SetDefault("analyzer.rolling_window_periods", cfg.Analyzer.WindowPeriods)
	v.SetDefault("analyzer.relative_threshold", cfg.Analyzer.RelativeThreshold)
	v.SetDefault("projection.default_horizon_periods", cfg.Projection.DefaultHorizonPeriods)
	v.SetDefault("goals.ahead_margin_periods", cfg.Goals.AheadMarginPeriods)
	v.SetDefault("goals.behind_tolerance", cfg.Goals.BehindTolerance)
	v.SetDefault("goals.assumed_annual_return", cfg.Goals.AssumedAnnualReturn)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("store.enabled", cfg.Store.Enabled)
	v.SetDefault("store.path", cfg.Store.Path)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FINADVISOR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FINADVISOR_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
}

// Validate validates the configuration. Invalid configuration is fatal at run
// start: every downstream computation depends on it.
func (c *Config) Validate() error {
	if c.Analyzer.ZScoreWarning <= 0 {
		return errors.NewConfigError("analyzer.alert_zscore_warning", c.Analyzer.ZScoreWarning, "must be positive")
	}
	if c.Analyzer.ZScoreCritical <= 0 {
		return errors.NewConfigError("analyzer.alert_zscore_critical", c.Analyzer.ZScoreCritical, "must be positive")
	}
	if c.Analyzer.ZScoreCritical < c.Analyzer.ZScoreWarning {
		return errors.NewConfigError("analyzer.alert_zscore_critical", c.Analyzer.ZScoreCritical, "must not be below warning threshold")
	}
	if c.Analyzer.WindowPeriods < 1 {
		return errors.NewConfigError("analyzer.rolling_window_periods", c.Analyzer.WindowPeriods, "must be at least 1")
	}
	if c.Analyzer.RelativeThreshold <= 0 {
		return errors.NewConfigError("analyzer.relative_threshold", c.Analyzer.RelativeThreshold, "must be positive")
	}
	if c.Projection.DefaultHorizonPeriods < 0 {
		return errors.NewConfigError("projection.default_horizon_periods", c.Projection.DefaultHorizonPeriods, "must be non-negative")
	}
	if c.Goals.AheadMarginPeriods < 0 {
		return errors.NewConfigError("goals.ahead_margin_periods", c.Goals.AheadMarginPeriods, "must be non-negative")
	}
	if c.Goals.BehindTolerance < 0 {
		return errors.NewConfigError("goals.behind_tolerance", c.Goals.BehindTolerance, "must be non-negative")
	}
	return nil
}
