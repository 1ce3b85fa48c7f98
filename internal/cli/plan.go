package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"finadvisor/internal/planning"
	"finadvisor/pkg/utils"
)

func addPlanCommands(rootCmd *cobra.Command, app *App) {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Financial planning calculators",
	}

	planCmd.AddCommand(newEMICommand())
	planCmd.AddCommand(newSIPCommand())
	planCmd.AddCommand(newRetirementCommand())
	planCmd.AddCommand(newDebtCommand())

	rootCmd.AddCommand(planCmd)
}

func newEMICommand() *cobra.Command {
	var (
		amount float64
		rate   float64
		years  int
	)

	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Calculate loan EMI",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := planning.EMI(amount, rate, years)
			if err != nil {
				return err
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, result)
			}
			cmd.Printf("EMI: %s/month\n", utils.FormatAmount(result.EMI))
			cmd.Printf("Total payment: %s\n", utils.FormatAmount(result.TotalPayment))
			cmd.Printf("Total interest: %s (%.1f%% of principal)\n",
				utils.FormatAmount(result.TotalInterest), result.InterestPercentage)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "loan amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate as decimal (0.09 = 9%)")
	cmd.Flags().IntVar(&years, "years", 0, "loan tenure in years")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("years")

	return cmd
}

func newSIPCommand() *cobra.Command {
	var (
		monthly float64
		years   int
		ret     float64
	)

	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Calculate systematic investment plan returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := planning.SIP(monthly, years, ret)
			if err != nil {
				return err
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, result)
			}
			cmd.Printf("Future value: %s\n", utils.FormatAmount(result.FutureValue))
			cmd.Printf("Total invested: %s\n", utils.FormatAmount(result.TotalInvested))
			cmd.Printf("Estimated returns: %s (%.2fx)\n",
				utils.FormatAmount(result.EstimatedReturns), result.ReturnMultiple)
			return nil
		},
	}

	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly investment amount")
	cmd.Flags().IntVar(&years, "years", 0, "investment period in years")
	cmd.Flags().Float64Var(&ret, "return", 0.12, "expected annual return as decimal")
	cmd.MarkFlagRequired("monthly")
	cmd.MarkFlagRequired("years")

	return cmd
}

func newRetirementCommand() *cobra.Command {
	var (
		age       int
		retireAge int
		savings   float64
		monthly   float64
		ret       float64
		inflation float64
		expenses  float64
	)

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Plan a retirement corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := planning.Retirement(age, retireAge, savings, monthly, ret, inflation, expenses)
			if err != nil {
				return err
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, plan)
			}
			cmd.Printf("Projected corpus at %d: %s\n", retireAge, utils.FormatCompact(plan.RetirementCorpus))
			cmd.Printf("Required corpus (25x expenses): %s\n", utils.FormatCompact(plan.RequiredCorpus))
			if plan.Sufficient {
				cmd.Println("Status: on track")
			} else {
				cmd.Printf("Status: shortfall of %s\n", utils.FormatCompact(plan.Shortfall))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 0, "current age")
	cmd.Flags().IntVar(&retireAge, "retire-at", 60, "planned retirement age")
	cmd.Flags().Float64Var(&savings, "savings", 0, "current retirement savings")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly contribution")
	cmd.Flags().Float64Var(&ret, "return", 0.10, "expected annual return as decimal")
	cmd.Flags().Float64Var(&inflation, "inflation", 0.06, "expected inflation rate as decimal")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "expected monthly retirement expenses (today's value)")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("expenses")

	return cmd
}

func newDebtCommand() *cobra.Command {
	var (
		debtsPath string
		extra     float64
		method    string
	)

	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Simulate debt payoff (snowball or avalanche)",
		RunE: func(cmd *cobra.Command, args []string) error {
			debts, err := readDebts(debtsPath)
			if err != nil {
				return err
			}
			plan, err := planning.DebtPayoff(debts, extra, planning.PayoffMethod(method))
			if err != nil {
				return err
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(cmd, plan)
			}
			cmd.Printf("Method: %s\n", plan.Method)
			cmd.Printf("Months to debt-free: %d\n", plan.TotalMonths)
			cmd.Printf("Total interest paid: %s\n", utils.FormatAmount(plan.TotalInterestPaid))
			for _, entry := range plan.Order {
				cmd.Printf("  %s cleared in month %d\n", entry.Name, entry.PayoffMonth)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&debtsPath, "file", "", "JSON file with debts (required)")
	cmd.Flags().Float64Var(&extra, "extra", 0, "extra monthly payment")
	cmd.Flags().StringVar(&method, "method", "snowball", "payoff method: snowball or avalanche")
	cmd.MarkFlagRequired("file")

	return cmd
}

func readDebts(path string) ([]planning.Debt, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var debts []planning.Debt
	if err := json.Unmarshal(raw, &debts); err != nil {
		return nil, fmt.Errorf("parsing debts file: %w", err)
	}
	return debts, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
