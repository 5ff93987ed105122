package simulation

import (
	"math"
	"testing"
)

// AssertAllTotals asserts that every trial total equals want exactly.
func AssertAllTotals(t *testing.T, result *Result, want float64) {
	t.Helper()
	for i, total := range result.Totals {
		if total != want {
			t.Errorf("AssertAllTotals: trial %d total %.2f, want %.2f", i, total, want)
			return
		}
	}
}

// AssertTotalsAtLeast asserts that no trial costs less than the purchase price.
func AssertTotalsAtLeast(t *testing.T, result *Result, floor float64) {
	t.Helper()
	for i, total := range result.Totals {
		if total < floor {
			t.Errorf("AssertTotalsAtLeast: trial %d total %.2f below %.2f", i, total, floor)
			return
		}
	}
}

// AssertSameTotals asserts that two results are bit-identical trial by trial.
func AssertSameTotals(t *testing.T, a, b *Result) {
	t.Helper()
	if len(a.Totals) != len(b.Totals) {
		t.Fatalf("AssertSameTotals: %d totals vs %d", len(a.Totals), len(b.Totals))
	}
	for i := range a.Totals {
		if math.Float64bits(a.Totals[i]) != math.Float64bits(b.Totals[i]) {
			t.Errorf("AssertSameTotals: trial %d: %v != %v", i, a.Totals[i], b.Totals[i])
			return
		}
	}
}
