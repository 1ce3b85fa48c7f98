package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"finadvisor/internal/errors"
	"finadvisor/internal/models"
	"finadvisor/pkg/utils"
)

func addHistoryCommands(rootCmd *cobra.Command, app *App) {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Query past analysis runs from the report store",
	}

	var runLimit int
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent analysis runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return errors.Wrap(errors.ErrDatabaseError, "report store not available")
			}
			runs, err := app.Store.RecentRuns(cmd.Context(), runLimit)
			if err != nil {
				return err
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, runs)
			}
			for _, r := range runs {
				cmd.Printf("%s  %s  alerts=%d projections=%d snapshots=%d rejected=%d\n",
					r.GeneratedAt.Format(time.RFC3339), r.ID,
					r.Alerts, r.Projections, r.Snapshots, r.Rejected)
			}
			return nil
		},
	}
	runsCmd.Flags().IntVar(&runLimit, "limit", 10, "maximum runs to list")
	historyCmd.AddCommand(runsCmd)

	var goalLimit int
	goalCmd := &cobra.Command{
		Use:   "goal <goal-id>",
		Short: "Show snapshot history for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return errors.Wrap(errors.ErrDatabaseError, "report store not available")
			}
			snaps, err := app.Store.SnapshotHistory(cmd.Context(), args[0], goalLimit)
			if err != nil {
				return err
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, snaps)
			}
			for _, s := range snaps {
				cmd.Printf("%s  %s  %.1f%%  required %s/month\n",
					s.EvaluatedAt.Format("2006-01-02"), s.Status,
					s.PercentComplete*100, utils.FormatAmount(s.RequiredMonthlyContribution/100))
			}
			return nil
		},
	}
	goalCmd.Flags().IntVar(&goalLimit, "limit", 50, "maximum snapshots to list")
	historyCmd.AddCommand(goalCmd)

	var alertLimit int
	alertsCmd := &cobra.Command{
		Use:   "alerts <category>",
		Short: "Show alert history for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return errors.Wrap(errors.ErrDatabaseError, "report store not available")
			}
			alerts, err := app.Store.AlertHistory(cmd.Context(), models.Category(args[0]), alertLimit)
			if err != nil {
				return err
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, alerts)
			}
			for _, a := range alerts {
				cmd.Printf("%s  [%s]  observed %s vs baseline %s (z=%.2f)\n",
					a.Period, a.Severity,
					utils.FormatAmount(a.Observed/100), utils.FormatAmount(a.BaselineMean/100), a.ZScore)
			}
			return nil
		},
	}
	alertsCmd.Flags().IntVar(&alertLimit, "limit", 50, "maximum alerts to list")
	historyCmd.AddCommand(alertsCmd)

	rootCmd.AddCommand(historyCmd)
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, nil
}
