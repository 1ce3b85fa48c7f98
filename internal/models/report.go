package models

import "time"

// ReportBundle is the single result object handed to the presentation layer.
// Alerts are ordered by severity then category; Progress is ordered by goal ID.
type ReportBundle struct {
	ID          string
	GeneratedAt time.Time

	Alerts      []Alert
	Projections map[string]*ProjectionResult
	Progress    []ProgressSnapshot

	RejectedTransactions []RejectedRecord
	RejectedHoldings     []RejectedRecord
	RejectedGoals        []RejectedRecord
}
