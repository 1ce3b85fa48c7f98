// Package models provides domain models for the financial analytics engine.
package models

import (
	"time"
)

// Category represents a spending category tag.
type Category string

// Known spending categories. Unrecognized tags normalize to Uncategorized.
const (
	CategoryHousing       Category = "housing"
	CategoryGroceries     Category = "groceries"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
	CategoryDining        Category = "dining"
	CategoryEntertainment Category = "entertainment"
	CategoryHealthcare    Category = "healthcare"
	CategoryInsurance     Category = "insurance"
	CategoryEducation     Category = "education"
	CategoryShopping      Category = "shopping"
	CategoryTravel        Category = "travel"
	CategorySubscriptions Category = "subscriptions"
	CategoryLoanPayment   Category = "loan_payment"
	CategoryIncome        Category = "income"
	CategorySavings       Category = "savings"
	CategoryUncategorized Category = "uncategorized"
)

// KnownCategories is the set of category tags the normalizer recognizes.
var KnownCategories = map[Category]bool{
	CategoryHousing:       true,
	CategoryGroceries:     true,
	CategoryTransport:     true,
	CategoryUtilities:     true,
	CategoryDining:        true,
	CategoryEntertainment: true,
	CategoryHealthcare:    true,
	CategoryInsurance:     true,
	CategoryEducation:     true,
	CategoryShopping:      true,
	CategoryTravel:        true,
	CategorySubscriptions: true,
	CategoryLoanPayment:   true,
	CategoryIncome:        true,
	CategorySavings:       true,
	CategoryUncategorized: true,
}

// Period identifies a calendar month bucket in "YYYY-MM" form (UTC).
type Period string

// PeriodOf returns the calendar-month period containing t.
func PeriodOf(t time.Time) Period {
	return Period(t.UTC().Format("2006-01"))
}

// Time returns the first instant of the period.
func (p Period) Time() (time.Time, error) {
	return time.Parse("2006-01", string(p))
}

// Prev returns the period n months before p. Invalid periods return p itself.
func (p Period) Prev(n int) Period {
	t, err := p.Time()
	if err != nil {
		return p
	}
	return PeriodOf(t.AddDate(0, -n, 0))
}

// RawRecord is a loosely typed transaction record as supplied by forms,
// imports, or upstream collectors. The normalizer is the only component
// allowed to consume it.
type RawRecord map[string]interface{}

// Transaction is a validated, canonical transaction. Immutable once produced
// by the normalizer. Amount is in signed currency minor units (cents).
type Transaction struct {
	ID          string
	Timestamp   time.Time
	Amount      int64
	Category    Category
	AccountID   string
	Description string
}

// Period returns the calendar-month period of the transaction.
func (t Transaction) Period() Period {
	return PeriodOf(t.Timestamp)
}

// RejectReason identifies why a raw record was rejected by the normalizer.
type RejectReason string

const (
	RejectMalformedAmount    RejectReason = "malformed_amount"
	RejectMalformedTimestamp RejectReason = "malformed_timestamp"
	RejectMissingCategory    RejectReason = "missing_category"
)

// RejectedRecord pairs a rejected input record with the reason it failed
// validation. Rejections are returned as data, never dropped.
type RejectedRecord struct {
	Record RawRecord
	Reason RejectReason
	Detail string
}
