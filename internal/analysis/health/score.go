// Package health scores overall financial health and analyzes longer-term
// spending behavior: savings consistency and per-category trends.
package health

import (
	"finadvisor/internal/errors"
	"finadvisor/internal/models"
)

// Profile is a snapshot of a user's monthly finances. Monetary amounts are in
// currency minor units; InvestmentRate is a decimal fraction of income.
type Profile struct {
	MonthlyIncome       int64
	Expenses            map[models.Category]int64
	InvestmentRate      float64
	EmergencyFundMonths float64
	DebtPayments        int64
}

// Score is a 0-100 financial health score with its component breakdown.
type Score struct {
	Total      float64
	Components map[string]float64
	Band       string
}

// Component score caps.
const (
	maxSavingsScore    = 25.0
	maxEmergencyScore  = 20.0
	maxDebtScore       = 15.0
	maxInvestmentScore = 15.0
	maxExpenseScore    = 25.0
)

// Evaluate computes the composite financial health score for a profile.
func Evaluate(p Profile) (*Score, error) {
	if p.MonthlyIncome <= 0 {
		return nil, errors.NewValidationError("monthly_income", p.MonthlyIncome, "must be positive")
	}

	income := float64(p.MonthlyIncome)
	var totalExpenses float64
	for _, amt := range p.Expenses {
		totalExpenses += float64(amt)
	}

	savingsRate := (income - totalExpenses) / income * 100
	savingsScore := clamp(savingsRate, 0, maxSavingsScore)

	emergencyScore := clamp(p.EmergencyFundMonths/6*maxEmergencyScore, 0, maxEmergencyScore)

	debtRatio := float64(p.DebtPayments) / income
	debtScore := clamp(maxDebtScore-debtRatio*100, 0, maxDebtScore)

	investmentScore := clamp(p.InvestmentRate*100*0.75, 0, maxInvestmentScore)

	// Each category eating more than 30% of income costs five points.
	heavy := 0
	for _, amt := range p.Expenses {
		if float64(amt)/income > 0.30 {
			heavy++
		}
	}
	expenseScore := clamp(maxExpenseScore-float64(heavy)*5, 0, maxExpenseScore)

	total := savingsScore + emergencyScore + debtScore + investmentScore + expenseScore

	return &Score{
		Total: total,
		Components: map[string]float64{
			"savings_rate":       savingsScore,
			"emergency_fund":     emergencyScore,
			"debt_management":    debtScore,
			"investment_rate":    investmentScore,
			"expense_management": expenseScore,
		},
		Band: band(total),
	}, nil
}

func band(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "needs_attention"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
