// Package spending detects anomalous spending per category against a rolling
// historical baseline.
package spending

import (
	"sort"
	"time"

	"finadvisor/internal/config"
	"finadvisor/internal/models"
)

// Analyzer computes rolling per-category statistics and flags the current
// period when it deviates from the baseline. Stateless: every call is a pure
// function of the transactions, the evaluation time, and the configuration.
type Analyzer struct {
	cfg config.AnalyzerConfig
}

// NewAnalyzer creates a new spending analyzer.
func NewAnalyzer(cfg config.AnalyzerConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// CategoryProfile holds the rolling statistics for one category. Recomputed
// on every analysis run, never carried across runs.
type CategoryProfile struct {
	Category     Category
	Mean         float64
	StdDev       float64
	Window       []float64
	CurrentTotal float64
	DataPeriods  int
}

// Category aliases the model type for profile consumers.
type Category = models.Category

// Analyze partitions transactions by category and calendar month, computes
// the baseline over the trailing window (excluding the period containing
// asOf), and returns alerts for the current period ordered by descending
// severity then category name.
func (a *Analyzer) Analyze(txns []models.Transaction, asOf time.Time) []models.Alert {
	profiles := a.Profiles(txns, asOf)
	current := models.PeriodOf(asOf)

	alerts := make([]models.Alert, 0)
	for _, p := range profiles {
		if alert, ok := a.evaluate(p, current); ok {
			alerts = append(alerts, alert)
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Severity.Rank() != alerts[j].Severity.Rank() {
			return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
		}
		return alerts[i].Category < alerts[j].Category
	})

	return alerts
}

// Profiles computes per-category rolling statistics for the trailing window
// ending just before the period containing asOf.
func (a *Analyzer) Profiles(txns []models.Transaction, asOf time.Time) []CategoryProfile {
	current := models.PeriodOf(asOf)

	// Historical window: the N calendar months immediately before the
	// current period, oldest first.
	window := make([]models.Period, a.cfg.WindowPeriods)
	for i := 0; i < a.cfg.WindowPeriods; i++ {
		window[i] = current.Prev(a.cfg.WindowPeriods - i)
	}

	totals := spendTotals(txns)

	categories := make([]models.Category, 0, len(totals))
	for cat := range totals {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	profiles := make([]CategoryProfile, 0, len(categories))
	for _, cat := range categories {
		byPeriod := totals[cat]

		series := make([]float64, len(window))
		dataPeriods := 0
		for i, p := range window {
			series[i] = byPeriod[p]
			if byPeriod[p] > 0 {
				dataPeriods++
			}
		}

		profiles = append(profiles, CategoryProfile{
			Category:     cat,
			Mean:         mean(series),
			StdDev:       stdDev(series),
			Window:       series,
			CurrentTotal: byPeriod[current],
			DataPeriods:  dataPeriods,
		})
	}

	return profiles
}

// evaluate applies the anomaly policy to one category profile.
func (a *Analyzer) evaluate(p CategoryProfile, current models.Period) (models.Alert, bool) {
	// Cold start: no historical data, nothing to judge against.
	if p.DataPeriods == 0 {
		return models.Alert{}, false
	}

	// Degenerate baseline: fall back to the relative rule with reduced
	// confidence.
	if p.StdDev == 0 || p.DataPeriods < 2 {
		if p.CurrentTotal > p.Mean*(1+a.cfg.RelativeThreshold) {
			return models.Alert{
				Category:       p.Category,
				Severity:       models.SeverityInfo,
				Period:         current,
				Observed:       p.CurrentTotal,
				BaselineMean:   p.Mean,
				BaselineStdDev: p.StdDev,
				ZScore:         0,
			}, true
		}
		return models.Alert{}, false
	}

	z := (p.CurrentTotal - p.Mean) / p.StdDev

	var severity models.Severity
	switch {
	case abs(z) >= a.cfg.ZScoreCritical:
		severity = models.SeverityCritical
	case abs(z) >= a.cfg.ZScoreWarning:
		severity = models.SeverityWarning
	default:
		return models.Alert{}, false
	}

	return models.Alert{
		Category:       p.Category,
		Severity:       severity,
		Period:         current,
		Observed:       p.CurrentTotal,
		BaselineMean:   p.Mean,
		BaselineStdDev: p.StdDev,
		ZScore:         z,
	}, true
}

// spendTotals sums spending per category per period. Spending is the
// magnitude of debit (negative) amounts; credits are not spending.
func spendTotals(txns []models.Transaction) map[models.Category]map[models.Period]float64 {
	totals := make(map[models.Category]map[models.Period]float64)
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		byPeriod := totals[t.Category]
		if byPeriod == nil {
			byPeriod = make(map[models.Period]float64)
			totals[t.Category] = byPeriod
		}
		byPeriod[t.Period()] += float64(-t.Amount)
	}
	return totals
}
