package models

// Frequency represents how often a scheduled contribution recurs.
type Frequency string

const (
	FrequencyNone       Frequency = "none"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyBimonthly  Frequency = "bimonthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
	FrequencyWeekly     Frequency = "weekly" // not convertible to monthly periods
)

// MonthInterval returns the contribution interval in months and whether the
// frequency evenly divides the monthly compounding unit.
func (f Frequency) MonthInterval() (int, bool) {
	switch f {
	case FrequencyMonthly:
		return 1, true
	case FrequencyBimonthly:
		return 2, true
	case FrequencyQuarterly:
		return 3, true
	case FrequencySemiannual:
		return 6, true
	case FrequencyAnnual:
		return 12, true
	case FrequencyNone, "":
		return 0, true
	default:
		return 0, false
	}
}

// ContributionSchedule is a recurring addition to a holding. Amount is in
// currency minor units.
type ContributionSchedule struct {
	Amount    int64
	Frequency Frequency
}

// Holding is an investment position to be projected forward. Principal is in
// currency minor units; ExpectedAnnualReturn and Volatility are decimal rates
// (0.08 = 8%). Volatility is optional (zero means no bands).
type Holding struct {
	AssetID              string
	Principal            int64
	ExpectedAnnualReturn float64
	Volatility           float64
	Schedule             ContributionSchedule
}

// ProjectionPoint is one period of a growth projection. Low and High carry the
// volatility bands when the holding declares volatility, otherwise they equal
// Value.
type ProjectionPoint struct {
	PeriodIndex int
	Value       float64
	Low         float64
	High        float64
}

// ProjectionResult is the deterministic period-by-period projection for one
// holding. Immutable.
type ProjectionResult struct {
	AssetID        string
	HorizonPeriods int
	Points         []ProjectionPoint
}

// FinalValue returns the projected value at the end of the horizon.
func (r *ProjectionResult) FinalValue() float64 {
	if len(r.Points) == 0 {
		return 0
	}
	return r.Points[len(r.Points)-1].Value
}
