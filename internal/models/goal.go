package models

import "time"

// GoalStatus represents the derived state of a goal at evaluation time.
type GoalStatus string

const (
	GoalOnTrack  GoalStatus = "on_track"
	GoalBehind   GoalStatus = "behind"
	GoalAhead    GoalStatus = "ahead"
	GoalAchieved GoalStatus = "achieved"
	GoalExpired  GoalStatus = "expired"
)

// Terminal reports whether the status is terminal (no further progress
// evaluation is meaningful).
func (s GoalStatus) Terminal() bool {
	return s == GoalAchieved || s == GoalExpired
}

// Contribution is one historical payment toward a goal. Amount is in currency
// minor units.
type Contribution struct {
	Date   time.Time
	Amount int64
}

// Goal is a savings target. The tracker never mutates a Goal; balance updates
// come from the caller as fresh Goal values. Amounts are in currency minor
// units.
type Goal struct {
	ID                  string
	TargetAmount        int64
	TargetDate          time.Time
	CurrentBalance      int64
	ContributionHistory []Contribution
}

// ProgressSnapshot is a point-in-time evaluation of a goal. Created fresh on
// every evaluation; prior snapshots are never overwritten.
type ProgressSnapshot struct {
	GoalID                      string
	EvaluatedAt                 time.Time
	PercentComplete             float64
	RequiredMonthlyContribution float64
	RemainingPeriods            int
	Status                      GoalStatus
}
