package utils

import "testing"

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{-4250, "-42.50"},
		{123456789, "1,234,567.89"},
		{-100000, "-1,000.00"},
	}

	for _, tt := range tests {
		if got := FormatMinorUnits(tt.amount); got != tt.want {
			t.Errorf("FormatMinorUnits(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{1234.5, "1,234.50"},
		{-9876543.21, "-9,876,543.21"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%f) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.125); got != "+12.50%" {
		t.Errorf("FormatPercent(0.125) = %q", got)
	}
	if got := FormatPercent(-0.03); got != "-3.00%" {
		t.Errorf("FormatPercent(-0.03) = %q", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{999, "999.00"},
		{1500, "1.50K"},
		{2500000, "2.50M"},
		{-1500, "-1.50K"},
	}

	for _, tt := range tests {
		if got := FormatCompact(tt.amount); got != tt.want {
			t.Errorf("FormatCompact(%f) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
