package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"finadvisor/internal/models"
)

func TestWriteJSONRoundTrips(t *testing.T) {
	bundle := &models.ReportBundle{
		ID:          "run-1",
		GeneratedAt: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		Alerts: []models.Alert{
			{Category: models.CategoryDining, Severity: models.SeverityCritical, Period: "2025-07", ZScore: 5},
		},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, bundle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded models.ReportBundle
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != "run-1" || len(decoded.Alerts) != 1 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestWriteAlertsCSVPreservesOrder(t *testing.T) {
	alerts := []models.Alert{
		{Category: models.CategoryGroceries, Severity: models.SeverityCritical, Period: "2025-07", ZScore: 4.2},
		{Category: models.CategoryDining, Severity: models.SeverityWarning, Period: "2025-07", ZScore: 2.1},
	}

	var buf bytes.Buffer
	if err := WriteAlertsCSV(&buf, alerts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "category") || !strings.Contains(lines[0], "zscore") {
		t.Errorf("missing expected header columns: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "groceries,critical") {
		t.Errorf("row order must follow input order, got %s", lines[1])
	}
}

func TestWriteProjectionsCSVSortsAssets(t *testing.T) {
	projections := map[string]*models.ProjectionResult{
		"zeta": {AssetID: "zeta", Points: []models.ProjectionPoint{{PeriodIndex: 0, Value: 100}}},
		"alfa": {AssetID: "alfa", Points: []models.ProjectionPoint{{PeriodIndex: 0, Value: 200}}},
	}

	var buf bytes.Buffer
	if err := WriteProjectionsCSV(&buf, projections); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "alfa,") || !strings.HasPrefix(lines[2], "zeta,") {
		t.Errorf("assets must be in lexical order:\n%s", buf.String())
	}
}

func TestWriteSnapshotsCSV(t *testing.T) {
	snaps := []models.ProgressSnapshot{
		{
			GoalID:          "g1",
			EvaluatedAt:     time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			PercentComplete: 0.4,
			Status:          models.GoalOnTrack,
		},
	}

	var buf bytes.Buffer
	if err := WriteSnapshotsCSV(&buf, snaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "g1,2025-07-15,0.4,0,on_track") {
		t.Errorf("unexpected snapshot row:\n%s", buf.String())
	}
}
