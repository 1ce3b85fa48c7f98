package planning

import (
	"sort"

	"finadvisor/internal/errors"
)

// PayoffMethod selects the debt payoff ordering strategy.
type PayoffMethod string

const (
	// MethodSnowball pays the smallest balance first.
	MethodSnowball PayoffMethod = "snowball"
	// MethodAvalanche pays the highest interest rate first.
	MethodAvalanche PayoffMethod = "avalanche"
)

// Debt is one outstanding debt. Rate is an annual decimal fraction.
type Debt struct {
	Name       string
	Balance    float64
	Rate       float64
	MinPayment float64
}

// PayoffEntry records when one debt is cleared in a payoff plan.
type PayoffEntry struct {
	Name        string
	PayoffMonth int
}

// PayoffPlan is the result of a debt payoff simulation.
type PayoffPlan struct {
	Method            PayoffMethod
	TotalMonths       int
	TotalInterestPaid float64
	Order             []PayoffEntry
}

// Payoff simulation cap, in months.
const maxPayoffMonths = 1200

// DebtPayoff simulates paying off a set of debts with the snowball or
// avalanche strategy, directing any extra payment at the highest-priority
// open debt each month.
func DebtPayoff(debts []Debt, extraPayment float64, method PayoffMethod) (*PayoffPlan, error) {
	if len(debts) == 0 {
		return nil, errors.Wrap(errors.ErrInsufficientData, "no debts to pay off")
	}
	if method != MethodSnowball && method != MethodAvalanche {
		return nil, errors.NewValidationError("method", string(method), "must be snowball or avalanche")
	}
	for _, d := range debts {
		if d.Balance < 0 || d.Rate < 0 || d.MinPayment <= 0 {
			return nil, errors.NewValidationError("debt", d.Name, "balance and rate must be non-negative, min payment positive")
		}
		// A payment that cannot outpace monthly interest never terminates.
		if d.MinPayment <= d.Balance*d.Rate/12 {
			return nil, errors.NewValidationError("debt", d.Name, "min payment does not cover monthly interest")
		}
	}

	working := make([]Debt, len(debts))
	copy(working, debts)

	if method == MethodSnowball {
		sort.Slice(working, func(i, j int) bool { return working[i].Balance < working[j].Balance })
	} else {
		sort.Slice(working, func(i, j int) bool { return working[i].Rate > working[j].Rate })
	}

	plan := &PayoffPlan{Method: method}
	cleared := make(map[string]bool)

	for anyOpen(working) && plan.TotalMonths < maxPayoffMonths {
		plan.TotalMonths++
		extra := extraPayment

		for i := range working {
			d := &working[i]
			if d.Balance <= 0 {
				continue
			}

			interest := d.Balance * d.Rate / 12
			plan.TotalInterestPaid += interest

			payment := d.MinPayment + extra
			extra = 0 // extra goes to the first open debt in priority order

			principal := payment - interest
			if principal > d.Balance {
				principal = d.Balance
			}
			d.Balance -= principal

			if d.Balance <= 0 && !cleared[d.Name] {
				cleared[d.Name] = true
				plan.Order = append(plan.Order, PayoffEntry{Name: d.Name, PayoffMonth: plan.TotalMonths})
			}
		}
	}

	return plan, nil
}

func anyOpen(debts []Debt) bool {
	for _, d := range debts {
		if d.Balance > 0 {
			return true
		}
	}
	return false
}
