// Package projection produces deterministic multi-horizon growth projections
// for investment holdings.
package projection

import (
	"finadvisor/internal/errors"
	"finadvisor/internal/models"
)

// Engine projects holdings forward using compound growth plus periodic
// contributions. Purely deterministic: the expected return is a fixed
// assumption, never a market feed.
type Engine struct{}

// NewEngine creates a new projection engine.
func NewEngine() *Engine {
	return &Engine{}
}

// MonthlyRate converts a nominal annual return rate to the monthly
// compounding rate: annual/12. Negative rates convert the same way, with no
// floor.
func MonthlyRate(annual float64) float64 {
	return annual / 12
}

// Project computes the period-by-period projected value of a holding over the
// given horizon in months. value[0] is the principal; each subsequent period
// compounds the prior value and applies the scheduled contribution. A
// contribution frequency that does not evenly divide the monthly period unit
// fails with a ScheduleError naming the holding; the engine never guesses an
// approximate conversion.
func (e *Engine) Project(h models.Holding, horizon int) (*models.ProjectionResult, error) {
	if horizon < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidHorizon, "asset %s: horizon %d", h.AssetID, horizon)
	}
	if h.Principal < 0 {
		return nil, errors.NewValidationError("principal", h.Principal, "must be non-negative")
	}
	if h.ExpectedAnnualReturn < -1 {
		return nil, errors.NewValidationError("expected_annual_return", h.ExpectedAnnualReturn, "must be at least -1")
	}

	interval, ok := h.Schedule.Frequency.MonthInterval()
	if !ok {
		return nil, errors.NewScheduleError(h.AssetID, string(h.Schedule.Frequency),
			"frequency does not evenly divide the monthly period unit")
	}

	rate := MonthlyRate(h.ExpectedAnnualReturn)
	lowRate := rate
	highRate := rate
	if h.Volatility > 0 {
		lowRate = MonthlyRate(h.ExpectedAnnualReturn - h.Volatility)
		highRate = MonthlyRate(h.ExpectedAnnualReturn + h.Volatility)
	}

	principal := float64(h.Principal)
	points := make([]models.ProjectionPoint, horizon+1)
	points[0] = models.ProjectionPoint{PeriodIndex: 0, Value: principal, Low: principal, High: principal}

	value, low, high := principal, principal, principal
	for i := 1; i <= horizon; i++ {
		contribution := contributionAt(h.Schedule, interval, i)
		value = value*(1+rate) + contribution
		low = low*(1+lowRate) + contribution
		high = high*(1+highRate) + contribution
		points[i] = models.ProjectionPoint{PeriodIndex: i, Value: value, Low: low, High: high}
	}

	return &models.ProjectionResult{
		AssetID:        h.AssetID,
		HorizonPeriods: horizon,
		Points:         points,
	}, nil
}

// ProjectAll projects a list of holdings over a shared horizon, keyed by
// asset ID. The first schedule or validation failure aborts the whole batch.
func (e *Engine) ProjectAll(holdings []models.Holding, horizon int) (map[string]*models.ProjectionResult, error) {
	results := make(map[string]*models.ProjectionResult, len(holdings))
	for _, h := range holdings {
		r, err := e.Project(h, horizon)
		if err != nil {
			return nil, err
		}
		results[h.AssetID] = r
	}
	return results, nil
}

// contributionAt returns the contribution applied at period i for a schedule
// already normalized to a month interval.
func contributionAt(s models.ContributionSchedule, interval int, i int) float64 {
	if interval == 0 || s.Amount == 0 {
		return 0
	}
	if i%interval == 0 {
		return float64(s.Amount)
	}
	return 0
}
