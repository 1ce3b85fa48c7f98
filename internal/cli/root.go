// Package cli provides the command-line interface for the analytics engine.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"finadvisor/internal/config"
	"finadvisor/internal/engine"
	"finadvisor/internal/logging"
	"finadvisor/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Engine *engine.Engine
	Store  store.ReportStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Engine: engine.New(cfg, logger),
	}

	if cfg.Store.Enabled {
		reportStore, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize report store, history commands unavailable")
		} else {
			app.Store = reportStore
			logger.Debug().Str("path", cfg.Store.Path).Msg("Report store initialized")
		}
	}

	rootCmd := &cobra.Command{
		Use:   "finadvisor",
		Short: "Finadvisor - personal financial analytics engine",
		Long: `Finadvisor analyzes personal financial data into structured insights.

It detects spending anomalies against a rolling baseline, projects investment
growth over configurable horizons, and tracks progress toward savings goals.

Use 'finadvisor help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/finadvisor)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addAnalyzeCommand(rootCmd, app)
	addPlanCommands(rootCmd, app)
	addHealthCommand(rootCmd, app)
	addHistoryCommands(rootCmd, app)
	addVersionCommand(rootCmd)

	return rootCmd
}

func addVersionCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("finadvisor %s\n", Version)
		},
	})
}
