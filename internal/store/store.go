// Package store provides data persistence implementations.
package store

import (
	"context"
	"time"

	"finadvisor/internal/models"
)

// RunSummary is a lightweight view of a persisted engine run.
type RunSummary struct {
	ID          string
	GeneratedAt time.Time
	Alerts      int
	Projections int
	Snapshots   int
	Rejected    int
}

// ReportStore persists engine result bundles so the dashboard can show
// history across refreshes. The engine itself never touches the store; it is
// an external-collaborator surface wired in by the caller.
type ReportStore interface {
	SaveBundle(ctx context.Context, bundle *models.ReportBundle) error
	RecentRuns(ctx context.Context, limit int) ([]RunSummary, error)
	SnapshotHistory(ctx context.Context, goalID string, limit int) ([]models.ProgressSnapshot, error)
	AlertHistory(ctx context.Context, category models.Category, limit int) ([]models.Alert, error)
	Close() error
}
