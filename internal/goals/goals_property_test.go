package goals

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"finadvisor/internal/models"
)

// Property: every snapshot carries a percent_complete in [0, 1] and exactly
// one of the five statuses, for any structurally valid goal.
func TestProperty_SnapshotPercentAlwaysClamped(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("percent complete stays in unit range", prop.ForAll(
		func(target int64, balance int64, monthsAhead int) bool {
			g := models.Goal{
				ID:             "prop",
				TargetAmount:   target,
				CurrentBalance: balance,
				TargetDate:     evalAt.AddDate(0, monthsAhead, 0),
			}

			snap, err := NewTracker(testConfig()).Evaluate(g, evalAt)
			if err != nil {
				return false
			}
			if snap.PercentComplete < 0 || snap.PercentComplete > 1 {
				return false
			}

			switch snap.Status {
			case models.GoalOnTrack, models.GoalBehind, models.GoalAhead,
				models.GoalAchieved, models.GoalExpired:
				return true
			}
			return false
		},
		gen.Int64Range(1, 10_000_000_00),
		gen.Int64Range(0, 20_000_000_00),
		gen.IntRange(-24, 240),
	))

	properties.Property("balance at or above target is always achieved", prop.ForAll(
		func(target int64, surplus int64, monthsAhead int) bool {
			g := models.Goal{
				ID:             "prop",
				TargetAmount:   target,
				CurrentBalance: target + surplus,
				TargetDate:     evalAt.AddDate(0, monthsAhead, 0),
			}

			snap, err := NewTracker(testConfig()).Evaluate(g, evalAt)
			if err != nil {
				return false
			}
			return snap.Status == models.GoalAchieved && snap.PercentComplete == 1
		},
		gen.Int64Range(1, 10_000_000_00),
		gen.Int64Range(0, 1_000_000_00),
		gen.IntRange(-24, 240),
	))

	properties.TestingRun(t)
}
