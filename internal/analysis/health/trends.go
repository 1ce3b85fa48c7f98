package health

import (
	"math"
	"sort"

	"finadvisor/internal/models"
)

// TrendDirection labels the slope of a category's spending over time.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendFlat       TrendDirection = "flat"
)

// CategoryTrend is the linear trend of one category's per-period spend.
type CategoryTrend struct {
	Category  models.Category
	Slope     float64
	Direction TrendDirection
}

// CategoryTrends fits a least-squares line through each category's ordered
// per-period totals and reports the slope. Categories with fewer than two
// periods of data are skipped.
func CategoryTrends(totals map[models.Category][]float64) []CategoryTrend {
	categories := make([]models.Category, 0, len(totals))
	for cat := range totals {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	trends := make([]CategoryTrend, 0, len(categories))
	for _, cat := range categories {
		series := totals[cat]
		if len(series) < 2 {
			continue
		}
		slope := linearSlope(series)
		trends = append(trends, CategoryTrend{
			Category:  cat,
			Slope:     slope,
			Direction: direction(slope),
		})
	}
	return trends
}

// SavingsConsistency returns the coefficient of variation of a savings
// series, and whether it counts as volatile (CV above 0.3). A zero-mean
// series is reported as volatile with an infinite CV guarded to a large
// sentinel.
func SavingsConsistency(savings []float64) (cv float64, volatile bool) {
	if len(savings) < 3 {
		return 0, false
	}

	m := mean(savings)
	if m == 0 {
		return math.MaxFloat64, true
	}

	cv = stdDev(savings) / math.Abs(m)
	return cv, cv > 0.3
}

// linearSlope fits y = a + b*x over x = 0..n-1 and returns b.
func linearSlope(values []float64) float64 {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func direction(slope float64) TrendDirection {
	switch {
	case slope > 0:
		return TrendIncreasing
	case slope < 0:
		return TrendDecreasing
	default:
		return TrendFlat
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var variance float64
	for _, v := range values {
		d := v - m
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values)))
}
