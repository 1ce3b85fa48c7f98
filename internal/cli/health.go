package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"finadvisor/internal/analysis/health"
	"finadvisor/internal/models"
	"finadvisor/pkg/utils"
)

// healthInput is the JSON shape of a health profile file. Monetary amounts are
// major units for hand-editability; they are scaled to minor units on load.
type healthInput struct {
	MonthlyIncome       float64              `json:"monthly_income"`
	Expenses            map[string]float64   `json:"expenses"`
	InvestmentRate      float64              `json:"investment_rate"`
	EmergencyFundMonths float64              `json:"emergency_fund_months"`
	DebtPayments        float64              `json:"debt_payments"`
	SavingsHistory      []float64            `json:"savings_history"`
	CategoryHistory     map[string][]float64 `json:"category_history"`
}

func addHealthCommand(rootCmd *cobra.Command, app *App) {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Score financial health and spending trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readHealthInput(inputPath)
			if err != nil {
				return err
			}

			score, err := health.Evaluate(in.profile())
			if err != nil {
				return err
			}
			trends := health.CategoryTrends(in.categoryTotals())
			cv, volatile := health.SavingsConsistency(in.SavingsHistory)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, map[string]interface{}{
					"score":            score,
					"trends":           trends,
					"savings_cv":       cv,
					"savings_volatile": volatile,
				})
			}

			cmd.Printf("Financial health: %.0f/100 (%s)\n", score.Total, score.Band)
			components := make([]string, 0, len(score.Components))
			for name := range score.Components {
				components = append(components, name)
			}
			sort.Strings(components)
			for _, name := range components {
				cmd.Printf("  %-20s %5.1f\n", name, score.Components[name])
			}

			if len(trends) > 0 {
				cmd.Println("Category trends:")
				for _, tr := range trends {
					cmd.Printf("  %-14s %s (%s/month)\n", tr.Category, tr.Direction, utils.FormatAmount(tr.Slope))
				}
			}
			if len(in.SavingsHistory) >= 3 {
				if volatile {
					cmd.Printf("Savings consistency: volatile (cv %.2f)\n", cv)
				} else {
					cmd.Printf("Savings consistency: steady (cv %.2f)\n", cv)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON file with the health profile (required)")
	cmd.MarkFlagRequired("input")

	rootCmd.AddCommand(cmd)
}

func readHealthInput(path string) (*healthInput, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var in healthInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("parsing health profile: %w", err)
	}
	return &in, nil
}

func (in *healthInput) profile() health.Profile {
	expenses := make(map[models.Category]int64, len(in.Expenses))
	for cat, amt := range in.Expenses {
		expenses[models.Category(cat)] = int64(amt * 100)
	}
	return health.Profile{
		MonthlyIncome:       int64(in.MonthlyIncome * 100),
		Expenses:            expenses,
		InvestmentRate:      in.InvestmentRate,
		EmergencyFundMonths: in.EmergencyFundMonths,
		DebtPayments:        int64(in.DebtPayments * 100),
	}
}

func (in *healthInput) categoryTotals() map[models.Category][]float64 {
	totals := make(map[models.Category][]float64, len(in.CategoryHistory))
	for cat, series := range in.CategoryHistory {
		totals[models.Category(cat)] = series
	}
	return totals
}
