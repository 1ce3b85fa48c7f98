package models

// Severity represents the severity of a spending alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank returns a numeric rank for ordering alerts, higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Alert flags anomalous spending in one category for one period. Immutable.
// Monetary fields are in currency minor units.
type Alert struct {
	Category       Category
	Severity       Severity
	Period         Period
	Observed       float64
	BaselineMean   float64
	BaselineStdDev float64
	ZScore         float64
}
