package normalize

import (
	"testing"
	"time"

	"finadvisor/internal/models"
)

func TestNormalizeValidRecord(t *testing.T) {
	records := []models.RawRecord{
		{
			"id":          "txn-1",
			"timestamp":   "2025-06-15T10:30:00Z",
			"amount":      -42.50,
			"category":    "groceries",
			"account_id":  "acct-1",
			"description": "weekly shop",
		},
	}

	txns, rejected := Normalize(records)

	if len(rejected) != 0 {
		t.Fatalf("expected no rejections, got %d: %v", len(rejected), rejected)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}

	txn := txns[0]
	if txn.Amount != -4250 {
		t.Errorf("expected amount -4250 minor units, got %d", txn.Amount)
	}
	if txn.Category != models.CategoryGroceries {
		t.Errorf("expected category groceries, got %s", txn.Category)
	}
	want := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	if !txn.Timestamp.Equal(want) {
		t.Errorf("expected timestamp %v, got %v", want, txn.Timestamp)
	}
}

func TestNormalizeRejectionReasons(t *testing.T) {
	tests := []struct {
		name   string
		record models.RawRecord
		reason models.RejectReason
	}{
		{
			name:   "missing timestamp",
			record: models.RawRecord{"amount": 10.0},
			reason: models.RejectMalformedTimestamp,
		},
		{
			name:   "garbage timestamp",
			record: models.RawRecord{"timestamp": "not-a-date", "amount": 10.0},
			reason: models.RejectMalformedTimestamp,
		},
		{
			name:   "missing amount",
			record: models.RawRecord{"timestamp": "2025-06-15T00:00:00Z"},
			reason: models.RejectMalformedAmount,
		},
		{
			name:   "garbage amount",
			record: models.RawRecord{"timestamp": "2025-06-15T00:00:00Z", "amount": "abc"},
			reason: models.RejectMalformedAmount,
		},
		{
			name:   "non-string category",
			record: models.RawRecord{"timestamp": "2025-06-15T00:00:00Z", "amount": 10.0, "category": 42},
			reason: models.RejectMissingCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, rejected := Normalize([]models.RawRecord{tt.record})
			if len(txns) != 0 {
				t.Fatalf("expected rejection, got transaction %+v", txns[0])
			}
			if len(rejected) != 1 {
				t.Fatalf("expected 1 rejection, got %d", len(rejected))
			}
			if rejected[0].Reason != tt.reason {
				t.Errorf("expected reason %s, got %s", tt.reason, rejected[0].Reason)
			}
		})
	}
}

func TestNormalizeCategoryFallback(t *testing.T) {
	records := []models.RawRecord{
		{"timestamp": "2025-06-15T00:00:00Z", "amount": -5.0, "category": "llama-grooming"},
		{"timestamp": "2025-06-15T00:00:00Z", "amount": -5.0},
		{"timestamp": "2025-06-15T00:00:00Z", "amount": -5.0, "category": "  DINING "},
	}

	txns, rejected := Normalize(records)
	if len(rejected) != 0 {
		t.Fatalf("expected no rejections, got %v", rejected)
	}

	if txns[0].Category != models.CategoryUncategorized {
		t.Errorf("unknown tag should fall back to uncategorized, got %s", txns[0].Category)
	}
	if txns[1].Category != models.CategoryUncategorized {
		t.Errorf("absent category should fall back to uncategorized, got %s", txns[1].Category)
	}
	if txns[2].Category != models.CategoryDining {
		t.Errorf("expected case-insensitive match to dining, got %s", txns[2].Category)
	}
}

func TestNormalizeCountConservation(t *testing.T) {
	records := []models.RawRecord{
		{"timestamp": "2025-06-01T00:00:00Z", "amount": -10.0, "category": "groceries"},
		{"timestamp": "bad", "amount": -10.0},
		{"timestamp": "2025-06-02T00:00:00Z", "amount": "oops"},
		{"timestamp": int64(1750000000), "amount": 250000},
		{},
	}

	txns, rejected := Normalize(records)
	if len(txns)+len(rejected) != len(records) {
		t.Fatalf("count conservation violated: %d + %d != %d", len(txns), len(rejected), len(records))
	}
}

func TestNormalizeIntegerAmountIsMinorUnits(t *testing.T) {
	records := []models.RawRecord{
		{"timestamp": "2025-06-15T00:00:00Z", "amount": int64(-4250)},
	}

	txns, _ := Normalize(records)
	if len(txns) != 1 || txns[0].Amount != -4250 {
		t.Fatalf("integer amounts are minor units, got %+v", txns)
	}
}

func TestNormalizeGeneratesIDWhenMissing(t *testing.T) {
	records := []models.RawRecord{
		{"timestamp": "2025-06-15T00:00:00Z", "amount": -5.0},
	}

	txns, _ := Normalize(records)
	if len(txns) != 1 || txns[0].ID == "" {
		t.Fatal("expected a generated transaction ID")
	}
}
