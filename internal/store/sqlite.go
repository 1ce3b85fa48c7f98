package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"finadvisor/internal/models"
)

// SQLiteStore implements ReportStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based report store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Runs table: one row per engine run, full bundle as JSON
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		generated_at DATETIME NOT NULL,
		alert_count INTEGER NOT NULL,
		projection_count INTEGER NOT NULL,
		snapshot_count INTEGER NOT NULL,
		rejected_count INTEGER NOT NULL,
		bundle_json TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Alerts table for per-category history queries
	CREATE TABLE IF NOT EXISTS alerts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		category TEXT NOT NULL,
		severity TEXT NOT NULL,
		period TEXT NOT NULL,
		observed REAL NOT NULL,
		baseline_mean REAL NOT NULL,
		baseline_stddev REAL NOT NULL,
		zscore REAL NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	-- Goal snapshots table; snapshots are append-only, never overwritten
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		goal_id TEXT NOT NULL,
		evaluated_at DATETIME NOT NULL,
		percent_complete REAL NOT NULL,
		required_monthly REAL NOT NULL,
		remaining_periods INTEGER NOT NULL,
		status TEXT NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_alerts_category ON alerts(category);
	CREATE INDEX IF NOT EXISTS idx_snapshots_goal ON snapshots(goal_id, evaluated_at);
	CREATE INDEX IF NOT EXISTS idx_runs_generated ON runs(generated_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveBundle persists a run bundle along with queryable alert and snapshot
// rows.
func (s *SQLiteStore) SaveBundle(ctx context.Context, bundle *models.ReportBundle) error {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshaling bundle: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rejected := len(bundle.RejectedTransactions) + len(bundle.RejectedHoldings) + len(bundle.RejectedGoals)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, generated_at, alert_count, projection_count, snapshot_count, rejected_count, bundle_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		bundle.ID, bundle.GeneratedAt, len(bundle.Alerts), len(bundle.Projections), len(bundle.Progress), rejected, string(raw))
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for _, a := range bundle.Alerts {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO alerts (run_id, category, severity, period, observed, baseline_mean, baseline_stddev, zscore)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			bundle.ID, string(a.Category), string(a.Severity), string(a.Period), a.Observed, a.BaselineMean, a.BaselineStdDev, a.ZScore)
		if err != nil {
			return fmt.Errorf("inserting alert: %w", err)
		}
	}

	for _, snap := range bundle.Progress {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO snapshots (run_id, goal_id, evaluated_at, percent_complete, required_monthly, remaining_periods, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			bundle.ID, snap.GoalID, snap.EvaluatedAt, snap.PercentComplete, snap.RequiredMonthlyContribution, snap.RemainingPeriods, string(snap.Status))
		if err != nil {
			return fmt.Errorf("inserting snapshot: %w", err)
		}
	}

	return tx.Commit()
}

// RecentRuns returns summaries of the most recent runs, newest first.
func (s *SQLiteStore) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, generated_at, alert_count, projection_count, snapshot_count, rejected_count
		FROM runs ORDER BY generated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.GeneratedAt, &r.Alerts, &r.Projections, &r.Snapshots, &r.Rejected); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SnapshotHistory returns the persisted snapshots for one goal, newest first.
func (s *SQLiteStore) SnapshotHistory(ctx context.Context, goalID string, limit int) ([]models.ProgressSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT goal_id, evaluated_at, percent_complete, required_monthly, remaining_periods, status
		FROM snapshots WHERE goal_id = ? ORDER BY evaluated_at DESC LIMIT ?`, goalID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []models.ProgressSnapshot
	for rows.Next() {
		var snap models.ProgressSnapshot
		var status string
		if err := rows.Scan(&snap.GoalID, &snap.EvaluatedAt, &snap.PercentComplete, &snap.RequiredMonthlyContribution, &snap.RemainingPeriods, &status); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snap.Status = models.GoalStatus(status)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// AlertHistory returns persisted alerts for one category, newest run first.
func (s *SQLiteStore) AlertHistory(ctx context.Context, category models.Category, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.category, a.severity, a.period, a.observed, a.baseline_mean, a.baseline_stddev, a.zscore
		FROM alerts a JOIN runs r ON r.id = a.run_id
		WHERE a.category = ? ORDER BY r.generated_at DESC LIMIT ?`, string(category), limit)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		var cat, severity, period string
		if err := rows.Scan(&cat, &severity, &period, &a.Observed, &a.BaselineMean, &a.BaselineStdDev, &a.ZScore); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		a.Category = models.Category(cat)
		a.Severity = models.Severity(severity)
		a.Period = models.Period(period)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
