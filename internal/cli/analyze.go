package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"finadvisor/internal/engine"
	"finadvisor/internal/export"
	"finadvisor/internal/models"
	"finadvisor/pkg/utils"
)

// inputFile is the JSON shape accepted by the analyze command. Transactions
// stay loosely typed; the normalizer inside the engine owns their validation.
type inputFile struct {
	Transactions []models.RawRecord `json:"transactions"`
	Holdings     []holdingInput     `json:"holdings"`
	Goals        []goalInput        `json:"goals"`
}

type holdingInput struct {
	AssetID              string  `json:"asset_id"`
	Principal            int64   `json:"principal"`
	ExpectedAnnualReturn float64 `json:"expected_annual_return"`
	Volatility           float64 `json:"volatility"`
	Contribution         struct {
		Amount    int64  `json:"amount"`
		Frequency string `json:"frequency"`
	} `json:"contribution"`
}

type goalInput struct {
	ID             string `json:"id"`
	TargetAmount   int64  `json:"target_amount"`
	TargetDate     string `json:"target_date"`
	CurrentBalance int64  `json:"current_balance"`
	Contributions  []struct {
		Date   string `json:"date"`
		Amount int64  `json:"amount"`
	} `json:"contributions"`
}

func addAnalyzeCommand(rootCmd *cobra.Command, app *App) {
	var (
		inputPath string
		horizon   int
		save      bool
		csvDir    string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis over an input file",
		Long: `Analyze reads transactions, holdings, and goals from a JSON file, runs the
anomaly analyzer, projection engine, and goal tracker, and prints the result
bundle.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(inputPath)
			if err != nil {
				return err
			}
			in.HorizonPeriods = horizon

			bundle, err := app.Engine.Run(cmd.Context(), *in)
			if err != nil {
				return fmt.Errorf("running analysis: %w", err)
			}

			if save && app.Store != nil {
				if err := app.Store.SaveBundle(cmd.Context(), bundle); err != nil {
					return fmt.Errorf("saving bundle: %w", err)
				}
				app.Logger.Info().Str("run_id", bundle.ID).Msg("Bundle saved")
			}

			if csvDir != "" {
				if err := writeCSVReports(csvDir, bundle); err != nil {
					return err
				}
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return export.WriteJSON(cmd.OutOrStdout(), bundle)
			}
			printBundle(cmd, bundle)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input JSON file (required)")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "projection horizon in months (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result bundle to the report store")
	cmd.Flags().StringVar(&csvDir, "csv", "", "directory to write CSV reports into")
	cmd.MarkFlagRequired("input")

	rootCmd.AddCommand(cmd)
}

func readInput(path string) (*engine.Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	var file inputFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing input file: %w", err)
	}

	in := &engine.Input{
		RawTransactions: file.Transactions,
	}

	for _, h := range file.Holdings {
		in.Holdings = append(in.Holdings, models.Holding{
			AssetID:              h.AssetID,
			Principal:            h.Principal,
			ExpectedAnnualReturn: h.ExpectedAnnualReturn,
			Volatility:           h.Volatility,
			Schedule: models.ContributionSchedule{
				Amount:    h.Contribution.Amount,
				Frequency: models.Frequency(h.Contribution.Frequency),
			},
		})
	}

	for _, g := range file.Goals {
		goal := models.Goal{
			ID:             g.ID,
			TargetAmount:   g.TargetAmount,
			CurrentBalance: g.CurrentBalance,
		}
		if g.TargetDate != "" {
			date, err := time.Parse("2006-01-02", g.TargetDate)
			if err != nil {
				return nil, fmt.Errorf("goal %s: parsing target_date: %w", g.ID, err)
			}
			goal.TargetDate = date
		}
		for _, c := range g.Contributions {
			date, err := time.Parse("2006-01-02", c.Date)
			if err != nil {
				return nil, fmt.Errorf("goal %s: parsing contribution date: %w", g.ID, err)
			}
			goal.ContributionHistory = append(goal.ContributionHistory, models.Contribution{
				Date:   date,
				Amount: c.Amount,
			})
		}
		in.Goals = append(in.Goals, goal)
	}

	return in, nil
}

func writeCSVReports(dir string, bundle *models.ReportBundle) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating csv directory: %w", err)
	}

	writers := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"alerts.csv", func(f *os.File) error { return export.WriteAlertsCSV(f, bundle.Alerts) }},
		{"progress.csv", func(f *os.File) error { return export.WriteSnapshotsCSV(f, bundle.Progress) }},
		{"projections.csv", func(f *os.File) error { return export.WriteProjectionsCSV(f, bundle.Projections) }},
	}

	for _, w := range writers {
		f, err := os.Create(filepath.Join(dir, w.name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", w.name, err)
		}
		if err := w.write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", w.name, err)
		}
		f.Close()
	}
	return nil
}

func printBundle(cmd *cobra.Command, bundle *models.ReportBundle) {
	cmd.Printf("Run %s generated at %s\n\n", bundle.ID, bundle.GeneratedAt.Format(time.RFC3339))

	cmd.Printf("Alerts (%d):\n", len(bundle.Alerts))
	for _, a := range bundle.Alerts {
		cmd.Printf("  [%s] %s %s: observed %s vs baseline %s (z=%.2f)\n",
			a.Severity, a.Category, a.Period,
			utils.FormatAmount(a.Observed/100), utils.FormatAmount(a.BaselineMean/100), a.ZScore)
	}

	cmd.Printf("\nProjections (%d):\n", len(bundle.Projections))
	for id, p := range bundle.Projections {
		cmd.Printf("  %s: %d periods, final value %s\n",
			id, p.HorizonPeriods, utils.FormatAmount(p.FinalValue()/100))
	}

	cmd.Printf("\nGoal progress (%d):\n", len(bundle.Progress))
	for _, s := range bundle.Progress {
		cmd.Printf("  %s: %s, %.1f%% complete, required %s/month\n",
			s.GoalID, s.Status, s.PercentComplete*100,
			utils.FormatAmount(s.RequiredMonthlyContribution/100))
	}

	rejected := len(bundle.RejectedTransactions) + len(bundle.RejectedHoldings) + len(bundle.RejectedGoals)
	if rejected > 0 {
		cmd.Printf("\nRejected records: %d\n", rejected)
		for _, r := range bundle.RejectedTransactions {
			cmd.Printf("  transaction: %s (%s)\n", r.Reason, r.Detail)
		}
		for _, r := range bundle.RejectedHoldings {
			cmd.Printf("  holding: %s\n", r.Detail)
		}
		for _, r := range bundle.RejectedGoals {
			cmd.Printf("  goal: %s\n", r.Detail)
		}
	}
}
