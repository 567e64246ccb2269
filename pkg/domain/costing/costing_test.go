package costing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCost_TaxInclusive(t *testing.T) {
	// 1 kg at 50/kg with 5% tax → 52.5
	price := NewPrice(decimal.NewFromInt(50), decimal.NewFromInt(5))
	got := Cost(1, price)
	want := decimal.RequireFromString("52.5")
	if !got.Equal(want) {
		t.Errorf("Cost(1, 50, 5%%) = %s, want %s", got, want)
	}
}

func TestCost_ZeroTax(t *testing.T) {
	price := NewPrice(decimal.RequireFromString("2.5"), decimal.Zero)
	got := Cost(4, price)
	if !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 10, got %s", got)
	}
}

func TestTaxOrDefault(t *testing.T) {
	if !TaxOrDefault(nil).IsZero() {
		t.Error("absent tax should default to 0")
	}

	tax := decimal.NewFromInt(19)
	if !TaxOrDefault(&tax).Equal(tax) {
		t.Error("present tax should pass through unchanged")
	}
}

func TestNewLockedPrice(t *testing.T) {
	locked := NewLockedPrice(decimal.NewFromInt(50), decimal.NewFromInt(5))
	editable := NewPrice(decimal.NewFromInt(50), decimal.NewFromInt(5))

	if !locked.Locked {
		t.Error("expected Locked marker on formulation price")
	}
	if editable.Locked {
		t.Error("supplier price must not be locked")
	}

	// The marker is metadata only: identical arithmetic
	if !Cost(2, locked).Equal(Cost(2, editable)) {
		t.Error("locked marker must not change the arithmetic")
	}
}

func TestRebase(t *testing.T) {
	// 0.05 per gram → 50 per kg
	perGram := NewPrice(decimal.RequireFromString("0.05"), decimal.Zero)
	perKg := Rebase(perGram, 0.001)
	if !perKg.PerUnit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected 50 per kg, got %s", perKg.PerUnit)
	}

	// factor 1 is a no-op
	same := Rebase(perGram, 1)
	if !same.PerUnit.Equal(perGram.PerUnit) {
		t.Errorf("expected unchanged price, got %s", same.PerUnit)
	}
}

func TestPercent_ZeroTotal(t *testing.T) {
	if got := Percent(decimal.NewFromInt(10), decimal.Zero); got != 0 {
		t.Errorf("expected 0%% for zero total, got %v", got)
	}

	got := Percent(decimal.NewFromInt(25), decimal.NewFromInt(100))
	if got != 25 {
		t.Errorf("expected 25%%, got %v", got)
	}
}
