package units

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize_MassUnits(t *testing.T) {
	tests := []struct {
		quantity float64
		unit     string
		want     float64
	}{
		{1, "kg", 1},
		{500, "g", 0.5},
		{250000, "mg", 0.25},
		{2, "t", 2000},
		{1, "KG", 1},  // case-insensitive
		{1, " g ", 0.001},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.quantity, tt.unit)
		if err != nil {
			t.Fatalf("Normalize(%v, %q) returned error: %v", tt.quantity, tt.unit, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Normalize(%v, %q) = %v, want %v", tt.quantity, tt.unit, got, tt.want)
		}
	}
}

func TestNormalize_VolumeAndCount(t *testing.T) {
	got, err := Normalize(750, "ml")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if math.Abs(got-0.75) > 1e-12 {
		t.Errorf("expected 0.75 L, got %v", got)
	}

	got, err = Normalize(3, "dz")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got != 36 {
		t.Errorf("expected 36 pcs, got %v", got)
	}
}

func TestNormalize_UnknownUnit(t *testing.T) {
	_, err := Normalize(1, "furlong")
	if err == nil {
		t.Fatal("expected error for unknown unit")
	}
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		unit string
		want string
	}{
		{"g", "kg"},
		{"ml", "L"},
		{"ea", "pcs"},
	}

	for _, tt := range tests {
		got, err := Base(tt.unit)
		if err != nil {
			t.Fatalf("Base(%q) returned error: %v", tt.unit, err)
		}
		if got != tt.want {
			t.Errorf("Base(%q) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestFamilyOf(t *testing.T) {
	fam, err := FamilyOf("oz")
	if err != nil {
		t.Fatalf("FamilyOf failed: %v", err)
	}
	if fam != Mass {
		t.Errorf("expected Mass, got %v", fam)
	}

	if _, err := FamilyOf(""); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit for empty unit, got %v", err)
	}
}
