package health

import (
	"math"
	"testing"

	"finadvisor/internal/models"
)

func TestCategoryTrendsDetectsDirection(t *testing.T) {
	totals := map[models.Category][]float64{
		models.CategoryGroceries: {100, 120, 140, 160},
		models.CategoryDining:    {200, 180, 160, 140},
		models.CategoryUtilities: {90, 90, 90, 90},
		models.CategoryTravel:    {500}, // single point, skipped
	}

	trends := CategoryTrends(totals)
	if len(trends) != 3 {
		t.Fatalf("expected 3 trends, got %d", len(trends))
	}

	byCategory := make(map[models.Category]CategoryTrend)
	for _, tr := range trends {
		byCategory[tr.Category] = tr
	}

	if byCategory[models.CategoryGroceries].Direction != TrendIncreasing {
		t.Errorf("groceries should be increasing, got %s", byCategory[models.CategoryGroceries].Direction)
	}
	if math.Abs(byCategory[models.CategoryGroceries].Slope-20) > 1e-9 {
		t.Errorf("expected slope 20 per period, got %f", byCategory[models.CategoryGroceries].Slope)
	}
	if byCategory[models.CategoryDining].Direction != TrendDecreasing {
		t.Errorf("dining should be decreasing, got %s", byCategory[models.CategoryDining].Direction)
	}
	if byCategory[models.CategoryUtilities].Direction != TrendFlat {
		t.Errorf("utilities should be flat, got %s", byCategory[models.CategoryUtilities].Direction)
	}
}

func TestCategoryTrendsDeterministicOrder(t *testing.T) {
	totals := map[models.Category][]float64{
		models.CategoryTravel:    {1, 2},
		models.CategoryDining:    {1, 2},
		models.CategoryGroceries: {1, 2},
	}

	trends := CategoryTrends(totals)
	want := []models.Category{models.CategoryDining, models.CategoryGroceries, models.CategoryTravel}
	for i, cat := range want {
		if trends[i].Category != cat {
			t.Errorf("position %d: expected %s, got %s", i, cat, trends[i].Category)
		}
	}
}

func TestSavingsConsistency(t *testing.T) {
	cv, volatile := SavingsConsistency([]float64{1000, 1010, 990, 1005})
	if volatile {
		t.Errorf("steady savings must not flag volatile, cv=%f", cv)
	}

	cv, volatile = SavingsConsistency([]float64{1000, 0, 2000, 100})
	if !volatile {
		t.Errorf("erratic savings must flag volatile, cv=%f", cv)
	}

	if _, volatile = SavingsConsistency([]float64{1000, 2000}); volatile {
		t.Error("fewer than three points is not enough evidence of volatility")
	}

	if _, volatile = SavingsConsistency([]float64{-500, 0, 500}); !volatile {
		t.Error("zero-mean savings is maximally volatile")
	}
}
