// Package planning provides deterministic financial planning calculators:
// compound growth, SIP, loan EMI, inflation adjustment, and retirement
// planning. All rates are decimal fractions (0.12 = 12% annual).
package planning

import (
	"math"

	"finadvisor/internal/errors"
)

// CompoundInterestResult holds the outcome of a compound growth calculation.
type CompoundInterestResult struct {
	FutureValue        float64
	TotalContributions float64
	TotalInterest      float64
	ReturnMultiple     float64
}

// CompoundInterest calculates compound growth of a principal with optional
// monthly contributions, compounding monthly.
func CompoundInterest(principal, annualRate float64, years int, monthlyContribution float64) (*CompoundInterestResult, error) {
	if principal < 0 {
		return nil, errors.NewValidationError("principal", principal, "must be non-negative")
	}
	if years < 0 {
		return nil, errors.NewValidationError("years", years, "must be non-negative")
	}

	periods := float64(years * 12)
	rate := annualRate / 12

	fvPrincipal := principal * math.Pow(1+rate, periods)

	var fvContributions float64
	if monthlyContribution > 0 && periods > 0 {
		if rate == 0 {
			fvContributions = monthlyContribution * periods
		} else {
			fvContributions = monthlyContribution * (math.Pow(1+rate, periods) - 1) / rate
		}
	}

	futureValue := fvPrincipal + fvContributions
	contributions := principal + monthlyContribution*periods

	result := &CompoundInterestResult{
		FutureValue:        futureValue,
		TotalContributions: contributions,
		TotalInterest:      futureValue - contributions,
	}
	if contributions > 0 {
		result.ReturnMultiple = futureValue / contributions
	}
	return result, nil
}

// SIPResult holds the outcome of a systematic investment plan calculation.
type SIPResult struct {
	FutureValue      float64
	TotalInvested    float64
	EstimatedReturns float64
	ReturnMultiple   float64
}

// SIP calculates the future value of a systematic investment plan with
// contributions at the start of each month (annuity due).
func SIP(monthlyInvestment float64, years int, expectedReturn float64) (*SIPResult, error) {
	if monthlyInvestment <= 0 {
		return nil, errors.NewValidationError("monthly_investment", monthlyInvestment, "must be positive")
	}
	if years <= 0 {
		return nil, errors.NewValidationError("years", years, "must be positive")
	}

	rate := expectedReturn / 12
	months := float64(years * 12)

	var futureValue float64
	if rate == 0 {
		futureValue = monthlyInvestment * months
	} else {
		futureValue = monthlyInvestment * (math.Pow(1+rate, months) - 1) / rate * (1 + rate)
	}

	invested := monthlyInvestment * months
	return &SIPResult{
		FutureValue:      futureValue,
		TotalInvested:    invested,
		EstimatedReturns: futureValue - invested,
		ReturnMultiple:   futureValue / invested,
	}, nil
}

// EMIResult holds the outcome of a loan EMI calculation.
type EMIResult struct {
	EMI                float64
	TotalPayment       float64
	TotalInterest      float64
	InterestPercentage float64
}

// EMI calculates the equated monthly installment for a loan.
func EMI(loanAmount, annualRate float64, tenureYears int) (*EMIResult, error) {
	if loanAmount <= 0 {
		return nil, errors.NewValidationError("loan_amount", loanAmount, "must be positive")
	}
	if tenureYears <= 0 {
		return nil, errors.NewValidationError("tenure_years", tenureYears, "must be positive")
	}
	if annualRate < 0 {
		return nil, errors.NewValidationError("annual_rate", annualRate, "must be non-negative")
	}

	rate := annualRate / 12
	months := float64(tenureYears * 12)

	var emi float64
	if rate == 0 {
		emi = loanAmount / months
	} else {
		growth := math.Pow(1+rate, months)
		emi = loanAmount * rate * growth / (growth - 1)
	}

	totalPayment := emi * months
	totalInterest := totalPayment - loanAmount

	return &EMIResult{
		EMI:                emi,
		TotalPayment:       totalPayment,
		TotalInterest:      totalInterest,
		InterestPercentage: totalInterest / loanAmount * 100,
	}, nil
}

// InflationResult holds the outcome of an inflation adjustment.
type InflationResult struct {
	CurrentValue        float64
	FutureValue         float64
	PurchasingPowerLoss float64
}

// InflationAdjust computes the future nominal amount needed to match today's
// purchasing power of amount after the given years of inflation.
func InflationAdjust(amount float64, years int, inflationRate float64) (*InflationResult, error) {
	if amount < 0 {
		return nil, errors.NewValidationError("amount", amount, "must be non-negative")
	}
	if years < 0 {
		return nil, errors.NewValidationError("years", years, "must be non-negative")
	}

	futureValue := amount * math.Pow(1+inflationRate, float64(years))
	return &InflationResult{
		CurrentValue:        amount,
		FutureValue:         futureValue,
		PurchasingPowerLoss: futureValue - amount,
	}, nil
}

// RetirementPlan holds the outcome of a retirement corpus calculation.
type RetirementPlan struct {
	RetirementCorpus         float64
	RequiredCorpus           float64
	Sufficient               bool
	Shortfall                float64
	AnnualRetirementExpenses float64
	YearsToRetirement        int
}

// Retirement plans a retirement corpus: projected savings at retirement
// against the corpus required by the 4% rule (25x inflation-adjusted annual
// expenses).
func Retirement(currentAge, retirementAge int, currentSavings, monthlyContribution, expectedReturn, inflationRate, monthlyExpenses float64) (*RetirementPlan, error) {
	if retirementAge <= currentAge {
		return nil, errors.NewValidationError("retirement_age", retirementAge, "must be after current age")
	}

	years := retirementAge - currentAge

	corpus, err := CompoundInterest(currentSavings, expectedReturn, years, monthlyContribution)
	if err != nil {
		return nil, err
	}

	inflatedExpenses := monthlyExpenses * math.Pow(1+inflationRate, float64(years))
	annualExpenses := inflatedExpenses * 12
	required := annualExpenses * 25

	plan := &RetirementPlan{
		RetirementCorpus:         corpus.FutureValue,
		RequiredCorpus:           required,
		Sufficient:               corpus.FutureValue >= required,
		AnnualRetirementExpenses: annualExpenses,
		YearsToRetirement:        years,
	}
	if !plan.Sufficient {
		plan.Shortfall = required - corpus.FutureValue
	}
	return plan, nil
}
