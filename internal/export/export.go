// Package export serializes report bundles for external consumers: indented
// JSON for the dashboard, CSV for spreadsheet handoff.
package export

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/gocarina/gocsv"

	"finadvisor/internal/models"
)

// WriteJSON writes the full bundle as indented JSON.
func WriteJSON(w io.Writer, bundle *models.ReportBundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bundle)
}

type alertRow struct {
	Category       string  `csv:"category"`
	Severity       string  `csv:"severity"`
	Period         string  `csv:"period"`
	Observed       float64 `csv:"observed"`
	BaselineMean   float64 `csv:"baseline_mean"`
	BaselineStdDev float64 `csv:"baseline_stddev"`
	ZScore         float64 `csv:"zscore"`
}

// WriteAlertsCSV writes alerts as CSV, preserving their severity ordering.
func WriteAlertsCSV(w io.Writer, alerts []models.Alert) error {
	rows := make([]alertRow, len(alerts))
	for i, a := range alerts {
		rows[i] = alertRow{
			Category:       string(a.Category),
			Severity:       string(a.Severity),
			Period:         string(a.Period),
			Observed:       a.Observed,
			BaselineMean:   a.BaselineMean,
			BaselineStdDev: a.BaselineStdDev,
			ZScore:         a.ZScore,
		}
	}
	return gocsv.Marshal(rows, w)
}

type snapshotRow struct {
	GoalID          string  `csv:"goal_id"`
	EvaluatedAt     string  `csv:"evaluated_at"`
	PercentComplete float64 `csv:"percent_complete"`
	RequiredMonthly float64 `csv:"required_monthly_contribution"`
	Status          string  `csv:"status"`
}

// WriteSnapshotsCSV writes goal progress snapshots as CSV.
func WriteSnapshotsCSV(w io.Writer, snaps []models.ProgressSnapshot) error {
	rows := make([]snapshotRow, len(snaps))
	for i, s := range snaps {
		rows[i] = snapshotRow{
			GoalID:          s.GoalID,
			EvaluatedAt:     s.EvaluatedAt.Format("2006-01-02"),
			PercentComplete: s.PercentComplete,
			RequiredMonthly: s.RequiredMonthlyContribution,
			Status:          string(s.Status),
		}
	}
	return gocsv.Marshal(rows, w)
}

type projectionRow struct {
	AssetID     string  `csv:"asset_id"`
	PeriodIndex int     `csv:"period"`
	Value       float64 `csv:"value"`
	Low         float64 `csv:"low"`
	High        float64 `csv:"high"`
}

// WriteProjectionsCSV writes all projection series as long-form CSV, assets
// in lexical order.
func WriteProjectionsCSV(w io.Writer, projections map[string]*models.ProjectionResult) error {
	assetIDs := make([]string, 0, len(projections))
	for id := range projections {
		assetIDs = append(assetIDs, id)
	}
	sort.Strings(assetIDs)

	var rows []projectionRow
	for _, id := range assetIDs {
		for _, p := range projections[id].Points {
			rows = append(rows, projectionRow{
				AssetID:     id,
				PeriodIndex: p.PeriodIndex,
				Value:       p.Value,
				Low:         p.Low,
				High:        p.High,
			})
		}
	}
	return gocsv.Marshal(rows, w)
}
