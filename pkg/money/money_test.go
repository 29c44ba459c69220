package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestApplyRate(t *testing.T) {
	tenPercent := decimal.NewFromFloat(0.10)

	if got := ApplyRate(1000000, tenPercent); got != 100000 {
		t.Fatalf("10%% of 10000kr should be 1000kr, got %d", got)
	}
	// 10% of 1.05 kr = 10.5 öre, rounds half-up to 11 öre.
	if got := ApplyRate(105, tenPercent); got != 11 {
		t.Fatalf("expected half-up rounding to 11 öre, got %d", got)
	}
	if got := ApplyRate(0, tenPercent); got != 0 {
		t.Fatalf("expected zero for zero amount, got %d", got)
	}
	if got := ApplyRate(-500, tenPercent); got != 0 {
		t.Fatalf("expected zero for negative amount, got %d", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1); got != 0 {
		t.Fatalf("expected clamp to zero, got %d", got)
	}
	if got := Clamp(42); got != 42 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

func TestToDecimal(t *testing.T) {
	if got := ToDecimal(375000).StringFixed(2); got != "3750.00" {
		t.Fatalf("expected 3750.00, got %s", got)
	}
	if got := ToDecimal(5).StringFixed(2); got != "0.05" {
		t.Fatalf("expected 0.05, got %s", got)
	}
}

func TestFormatSEK(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0,00 kr"},
		{123450, "1 234,50 kr"},
		{100, "1,00 kr"},
		{5, "0,05 kr"},
		{123456789, "1 234 567,89 kr"},
		{-9950, "-99,50 kr"},
	}
	for _, tc := range cases {
		if got := FormatSEK(tc.amount); got != tc.want {
			t.Fatalf("FormatSEK(%d): expected %q, got %q", tc.amount, tc.want, got)
		}
	}
}
