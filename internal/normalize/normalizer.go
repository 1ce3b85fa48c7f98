// Package normalize validates and canonicalizes raw transaction records.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"finadvisor/internal/models"
)

// Timestamp layouts accepted from raw records, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
}

// Normalize validates a batch of raw records and converts the valid ones into
// canonical transactions. It is a pure function: every input record ends up
// either in the transaction slice or in the rejected slice, never both, never
// neither.
func Normalize(records []models.RawRecord) ([]models.Transaction, []models.RejectedRecord) {
	txns := make([]models.Transaction, 0, len(records))
	rejected := make([]models.RejectedRecord, 0)

	for _, rec := range records {
		txn, rej := normalizeOne(rec)
		if rej != nil {
			rejected = append(rejected, *rej)
			continue
		}
		txns = append(txns, txn)
	}

	return txns, rejected
}

func normalizeOne(rec models.RawRecord) (models.Transaction, *models.RejectedRecord) {
	ts, err := parseTimestamp(rec["timestamp"])
	if err != nil {
		return models.Transaction{}, &models.RejectedRecord{
			Record: rec,
			Reason: models.RejectMalformedTimestamp,
			Detail: err.Error(),
		}
	}

	amount, err := parseAmount(rec["amount"])
	if err != nil {
		return models.Transaction{}, &models.RejectedRecord{
			Record: rec,
			Reason: models.RejectMalformedAmount,
			Detail: err.Error(),
		}
	}

	category, err := parseCategory(rec["category"])
	if err != nil {
		return models.Transaction{}, &models.RejectedRecord{
			Record: rec,
			Reason: models.RejectMissingCategory,
			Detail: err.Error(),
		}
	}

	txn := models.Transaction{
		ID:          stringField(rec, "id"),
		Timestamp:   ts,
		Amount:      amount,
		Category:    category,
		AccountID:   stringField(rec, "account_id"),
		Description: stringField(rec, "description"),
	}
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}

	return txn, nil
}

// parseTimestamp accepts time.Time values, RFC3339-ish strings, and unix
// epoch seconds.
func parseTimestamp(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("timestamp missing")
	case time.Time:
		if t.IsZero() {
			return time.Time{}, fmt.Errorf("timestamp is zero")
		}
		return t.UTC(), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, fmt.Errorf("timestamp empty")
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case float64:
		return time.Unix(int64(t), 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

// parseAmount canonicalizes an amount to signed currency minor units.
// Integer inputs are already minor units; floats and numeric strings are
// major units and scale by 100.
func parseAmount(v interface{}) (int64, error) {
	switch a := v.(type) {
	case nil:
		return 0, fmt.Errorf("amount missing")
	case int64:
		return a, nil
	case int:
		return int64(a), nil
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return 0, fmt.Errorf("amount is not finite")
		}
		return int64(math.Round(a * 100)), nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(a, ",", ""))
		if s == "" {
			return 0, fmt.Errorf("amount empty")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("unparseable amount %q", a)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("amount is not finite")
		}
		return int64(math.Round(f * 100)), nil
	default:
		return 0, fmt.Errorf("unsupported amount type %T", v)
	}
}

// parseCategory maps a raw category value to a known tag. Absent or unknown
// tags fall back to uncategorized; a category that is present but not usable
// as a string is a rejection.
func parseCategory(v interface{}) (models.Category, error) {
	switch c := v.(type) {
	case nil:
		return models.CategoryUncategorized, nil
	case string:
		tag := models.Category(strings.ToLower(strings.TrimSpace(c)))
		if tag == "" {
			return models.CategoryUncategorized, nil
		}
		if models.KnownCategories[tag] {
			return tag, nil
		}
		return models.CategoryUncategorized, nil
	case models.Category:
		if models.KnownCategories[c] {
			return c, nil
		}
		return models.CategoryUncategorized, nil
	default:
		return "", fmt.Errorf("unsupported category type %T", v)
	}
}

func stringField(rec models.RawRecord, key string) string {
	if v, ok := rec[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
