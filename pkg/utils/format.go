// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"
)

// FormatMinorUnits formats an amount in currency minor units (cents) as a
// human-readable major-unit string with thousands separators.
func FormatMinorUnits(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	major := amount / 100
	minor := amount % 100

	result := fmt.Sprintf("%s.%02d", groupThousands(fmt.Sprintf("%d", major)), minor)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatAmount formats a float major-unit amount with thousands separators.
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")

	result := groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts comma separators into an integer string.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 0 {
		if len(s) >= 3 {
			result = s[len(s)-3:] + "," + result
			s = s[:len(s)-3]
		} else {
			result = s + "," + result
			s = ""
		}
	}
	return result
}

// FormatPercent formats a decimal fraction as a signed percentage.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value*100)
}

// FormatCompact formats a major-unit amount in compact form (K/M).
func FormatCompact(amount float64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", amount/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", amount/1e3)
	default:
		return fmt.Sprintf("%.2f", amount)
	}
}
