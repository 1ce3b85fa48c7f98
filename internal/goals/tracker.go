// Package goals evaluates savings goals into point-in-time progress
// snapshots.
package goals

import (
	"math"
	"time"

	"finadvisor/internal/config"
	"finadvisor/internal/errors"
	"finadvisor/internal/models"
	"finadvisor/internal/projection"
)

// Completion simulation cap, in months. Prevents unbounded loops when the
// average contribution can never reach the target.
const maxCompletionPeriods = 1200

// Tracker derives progress snapshots from goals. It never mutates a Goal:
// every evaluation produces a fresh snapshot.
type Tracker struct {
	cfg config.GoalConfig
}

// NewTracker creates a new goal tracker.
func NewTracker(cfg config.GoalConfig) *Tracker {
	return &Tracker{cfg: cfg}
}

// Evaluate derives a progress snapshot for a goal as of the given time.
// Past-dated goals produce an expired snapshot rather than an error; only
// structurally invalid goals (non-positive target, negative balance) are
// rejected.
func (t *Tracker) Evaluate(g models.Goal, at time.Time) (*models.ProgressSnapshot, error) {
	if g.TargetAmount <= 0 {
		return nil, errors.NewValidationError("target_amount", g.TargetAmount, "must be positive")
	}
	if g.CurrentBalance < 0 {
		return nil, errors.NewValidationError("current_balance", g.CurrentBalance, "must be non-negative")
	}

	snapshot := &models.ProgressSnapshot{
		GoalID:          g.ID,
		EvaluatedAt:     at,
		PercentComplete: clamp(float64(g.CurrentBalance)/float64(g.TargetAmount), 0, 1),
	}

	// Achieved is terminal and independent of the target date.
	if g.CurrentBalance >= g.TargetAmount {
		snapshot.Status = models.GoalAchieved
		return snapshot, nil
	}

	remaining := remainingPeriods(at, g.TargetDate)
	snapshot.RemainingPeriods = remaining

	if remaining == 0 {
		snapshot.Status = models.GoalExpired
		return snapshot, nil
	}

	rate := projection.MonthlyRate(t.cfg.AssumedAnnualReturn)
	required := RequiredContribution(float64(g.CurrentBalance), float64(g.TargetAmount), rate, remaining)
	snapshot.RequiredMonthlyContribution = required

	avg := averageMonthlyContribution(g.ContributionHistory)

	switch {
	case t.isAhead(g, avg, rate, remaining):
		snapshot.Status = models.GoalAhead
	case avg > 0 && required > avg*(1+t.cfg.BehindTolerance):
		snapshot.Status = models.GoalBehind
	case avg == 0 && required > 0:
		// No contribution history to compare against; a positive
		// required payment with no observed saving habit is behind.
		snapshot.Status = models.GoalBehind
	default:
		snapshot.Status = models.GoalOnTrack
	}

	return snapshot, nil
}

// EvaluateAll evaluates a list of goals, returning snapshots ordered by goal
// ID order of the input, and collecting per-goal validation failures.
func (t *Tracker) EvaluateAll(goals []models.Goal, at time.Time) ([]models.ProgressSnapshot, []models.RejectedRecord) {
	snapshots := make([]models.ProgressSnapshot, 0, len(goals))
	rejected := make([]models.RejectedRecord, 0)

	for _, g := range goals {
		snap, err := t.Evaluate(g, at)
		if err != nil {
			rejected = append(rejected, models.RejectedRecord{
				Record: models.RawRecord{"id": g.ID, "target_amount": g.TargetAmount},
				Reason: models.RejectMalformedAmount,
				Detail: err.Error(),
			})
			continue
		}
		snapshots = append(snapshots, *snap)
	}

	return snapshots, rejected
}

// RequiredContribution solves the future-value-of-annuity inversion: the
// fixed monthly payment P such that balance compounded at rate over n periods
// plus P per period reaches target exactly. A zero rate degenerates to linear
// division. Returns 0 when the compounded balance alone already covers the
// target.
func RequiredContribution(balance, target, rate float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	growth := math.Pow(1+rate, float64(n))
	need := target - balance*growth
	if need <= 0 {
		return 0
	}

	if rate == 0 {
		return need / float64(n)
	}
	return need * rate / (growth - 1)
}

// isAhead reports whether the projected completion at the historical average
// contribution rate precedes the target date by more than the configured
// margin.
func (t *Tracker) isAhead(g models.Goal, avg, rate float64, remaining int) bool {
	if avg <= 0 {
		return false
	}

	balance := float64(g.CurrentBalance)
	target := float64(g.TargetAmount)

	for month := 1; month <= maxCompletionPeriods; month++ {
		balance = balance*(1+rate) + avg
		if balance >= target {
			return month <= remaining-t.cfg.AheadMarginPeriods
		}
	}
	return false
}

// remainingPeriods counts the whole months from at until the target date,
// rounding partial months up. Zero when the target date has passed.
func remainingPeriods(at, target time.Time) int {
	if !target.After(at) {
		return 0
	}
	months := 0
	cursor := at
	for cursor.Before(target) {
		cursor = cursor.AddDate(0, 1, 0)
		months++
		if months > maxCompletionPeriods {
			break
		}
	}
	return months
}

// averageMonthlyContribution averages historical contributions over the
// distinct calendar months they span, so sparse histories are not flattered.
func averageMonthlyContribution(history []models.Contribution) float64 {
	if len(history) == 0 {
		return 0
	}

	var total float64
	months := make(map[models.Period]bool)
	for _, c := range history {
		total += float64(c.Amount)
		months[models.PeriodOf(c.Date)] = true
	}
	return total / float64(len(months))
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
