package health

import (
	"testing"

	"finadvisor/internal/models"
)

func TestEvaluateHealthyProfileScoresHigh(t *testing.T) {
	p := Profile{
		MonthlyIncome: 1000000, // 10000.00
		Expenses: map[models.Category]int64{
			models.CategoryHousing:   250000,
			models.CategoryGroceries: 80000,
			models.CategoryDining:    40000,
		},
		InvestmentRate:      0.20,
		EmergencyFundMonths: 6,
		DebtPayments:        0,
	}

	score, err := Evaluate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Savings rate 63% caps at 25, full emergency fund 20, no debt 15,
	// 20% investing caps at 15, no heavy categories 25: total 100.
	if score.Total != 100 {
		t.Errorf("expected perfect score, got %f (%+v)", score.Total, score.Components)
	}
	if score.Band != "excellent" {
		t.Errorf("expected excellent band, got %s", score.Band)
	}
}

func TestEvaluateStressedProfileScoresLow(t *testing.T) {
	p := Profile{
		MonthlyIncome: 300000,
		Expenses: map[models.Category]int64{
			models.CategoryHousing:   150000, // 50% of income
			models.CategoryGroceries: 100000, // 33% of income
			models.CategoryDining:    60000,
		},
		InvestmentRate:      0,
		EmergencyFundMonths: 0,
		DebtPayments:        60000, // 20% of income
	}

	score, err := Evaluate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if score.Band != "needs_attention" {
		t.Errorf("expected needs_attention band, got %s (total %f)", score.Band, score.Total)
	}
	if score.Components["savings_rate"] != 0 {
		t.Errorf("spending above income must zero the savings component, got %f",
			score.Components["savings_rate"])
	}
	if score.Components["expense_management"] != 15 {
		t.Errorf("two heavy categories cost ten points, got %f",
			score.Components["expense_management"])
	}
}

func TestEvaluateComponentCaps(t *testing.T) {
	p := Profile{
		MonthlyIncome:       100000,
		Expenses:            map[models.Category]int64{},
		InvestmentRate:      0.90,
		EmergencyFundMonths: 24,
	}

	score, err := Evaluate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if score.Components["savings_rate"] != maxSavingsScore {
		t.Errorf("savings component must cap at %f, got %f", maxSavingsScore, score.Components["savings_rate"])
	}
	if score.Components["emergency_fund"] != maxEmergencyScore {
		t.Errorf("emergency component must cap at %f, got %f", maxEmergencyScore, score.Components["emergency_fund"])
	}
	if score.Components["investment_rate"] != maxInvestmentScore {
		t.Errorf("investment component must cap at %f, got %f", maxInvestmentScore, score.Components["investment_rate"])
	}
	if score.Total > 100 {
		t.Errorf("total must never exceed 100, got %f", score.Total)
	}
}

func TestEvaluateRejectsNonPositiveIncome(t *testing.T) {
	if _, err := Evaluate(Profile{MonthlyIncome: 0}); err == nil {
		t.Error("zero income must be rejected")
	}
	if _, err := Evaluate(Profile{MonthlyIncome: -100}); err == nil {
		t.Error("negative income must be rejected")
	}
}

func TestBandBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "excellent"},
		{80, "excellent"},
		{79.9, "good"},
		{60, "good"},
		{59.9, "fair"},
		{40, "fair"},
		{39.9, "needs_attention"},
		{0, "needs_attention"},
	}

	for _, tt := range tests {
		if got := band(tt.score); got != tt.want {
			t.Errorf("band(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
