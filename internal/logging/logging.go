// Package logging provides structured logging functionality.
package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	home, _ := os.UserHomeDir()
	return LogConfig{
		Level:      "info",
		Console:    true,
		File:       true,
		FilePath:   filepath.Join(home, ".config", "finadvisor", "logs", "finadvisor.log"),
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     30,
	}
}

// NewLogger creates a new logger with default configuration.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig creates a new logger with the specified configuration.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		writers = append(writers, consoleWriter)
	}

	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err == nil {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			}
			writers = append(writers, fileWriter)
		}
	}

	var writer io.Writer
	if len(writers) == 0 {
		writer = os.Stdout
	} else if len(writers) == 1 {
		writer = writers[0]
	} else {
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDebugLevel sets the global log level to debug.
func SetDebugLevel() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// ContextKey is the type for context keys.
type ContextKey string

// LoggerKey is the context key for the logger.
const LoggerKey ContextKey = "logger"

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// WithGoal adds a goal ID to the logger context.
func WithGoal(logger zerolog.Logger, goalID string) zerolog.Logger {
	return logger.With().Str("goal_id", goalID).Logger()
}

// WithAsset adds an asset ID to the logger context.
func WithAsset(logger zerolog.Logger, assetID string) zerolog.Logger {
	return logger.With().Str("asset_id", assetID).Logger()
}

// LogRun logs the completion of an engine run.
func LogRun(logger zerolog.Logger, runID string, alerts, projections, snapshots, rejected int, duration time.Duration) {
	logger.Info().
		Str("event", "engine_run").
		Str("run_id", runID).
		Int("alerts", alerts).
		Int("projections", projections).
		Int("snapshots", snapshots).
		Int("rejected", rejected).
		Dur("duration", duration).
		Msg("Engine run completed")
}

// LogAlertEvent logs a spending alert.
func LogAlertEvent(logger zerolog.Logger, category, severity string, zscore, observed float64) {
	logger.Info().
		Str("event", "spending_alert").
		Str("category", category).
		Str("severity", severity).
		Float64("zscore", zscore).
		Float64("observed", observed).
		Msg("Spending anomaly detected")
}

// LogRejection logs a rejected input record.
func LogRejection(logger zerolog.Logger, kind, reason string) {
	logger.Debug().
		Str("event", "record_rejected").
		Str("kind", kind).
		Str("reason", reason).
		Msg("Input record rejected")
}
