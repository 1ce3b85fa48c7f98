package projection

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"finadvisor/internal/models"
)

// Property: for any holding with a positive return rate and non-negative
// contributions, the projected value sequence is monotonically non-decreasing.
func TestProperty_ProjectionMonotonicForPositiveRate(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("projected values never decrease", prop.ForAll(
		func(principal int64, annualRate float64, contribution int64, horizon int) bool {
			h := models.Holding{
				AssetID:              "prop",
				Principal:            principal,
				ExpectedAnnualReturn: annualRate,
				Schedule: models.ContributionSchedule{
					Amount:    contribution,
					Frequency: models.FrequencyMonthly,
				},
			}

			result, err := NewEngine().Project(h, horizon)
			if err != nil {
				return false
			}

			for i := 1; i < len(result.Points); i++ {
				if result.Points[i].Value < result.Points[i-1].Value {
					return false
				}
			}
			return true
		},
		gen.Int64Range(0, 100_000_000),
		gen.Float64Range(0.001, 0.50),
		gen.Int64Range(0, 1_000_000),
		gen.IntRange(0, 360),
	))

	properties.TestingRun(t)
}

// Property: the final value always equals closed-form compound growth of the
// principal when there are no contributions.
func TestProperty_ProjectionMatchesClosedForm(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("recursive projection matches closed form", prop.ForAll(
		func(principal int64, annualRate float64, horizon int) bool {
			h := models.Holding{
				AssetID:              "prop",
				Principal:            principal,
				ExpectedAnnualReturn: annualRate,
			}

			result, err := NewEngine().Project(h, horizon)
			if err != nil {
				return false
			}

			expected := float64(principal)
			rate := MonthlyRate(annualRate)
			for i := 0; i < horizon; i++ {
				expected *= 1 + rate
			}

			diff := result.FinalValue() - expected
			if diff < 0 {
				diff = -diff
			}
			// Tolerance scales with magnitude to absorb float accumulation.
			return diff <= 1e-9*(1+expected)
		},
		gen.Int64Range(0, 100_000_000),
		gen.Float64Range(-0.90, 0.50),
		gen.IntRange(0, 240),
	))

	properties.TestingRun(t)
}
