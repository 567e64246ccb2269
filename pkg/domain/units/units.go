// Package units converts (quantity, unit) pairs between heterogeneous
// measurement units so quantities from different ingredient and packaging
// records can be summed and compared. Each unit belongs to one family and
// every family has a canonical base unit: kg for mass, L for volume, pcs
// for count.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit symbol has no conversion entry.
// An unknown unit is a data-entry bug, not a recoverable condition: coercing
// it would corrupt every downstream total.
var ErrUnknownUnit = errors.New("unknown unit")

// Family is a measurement dimension
type Family int

const (
	Mass Family = iota
	Volume
	Count
)

// String method for Family enum
func (f Family) String() string {
	switch f {
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	case Count:
		return "count"
	default:
		return "unknown"
	}
}

type conversion struct {
	family Family
	factor float64 // multiplier to the family's base unit
}

// Base unit symbols per family
const (
	BaseMass   = "kg"
	BaseVolume = "L"
	BaseCount  = "pcs"
)

var table = map[string]conversion{
	// mass → kg
	"kg": {Mass, 1},
	"g":  {Mass, 0.001},
	"mg": {Mass, 0.000001},
	"t":  {Mass, 1000},
	"lb": {Mass, 0.45359237},
	"oz": {Mass, 0.028349523125},

	// volume → L
	"l":  {Volume, 1},
	"dl": {Volume, 0.1},
	"cl": {Volume, 0.01},
	"ml": {Volume, 0.001},

	// count → pcs
	"pcs":  {Count, 1},
	"pc":   {Count, 1},
	"ea":   {Count, 1},
	"unit": {Count, 1},
	"dz":   {Count, 12},
}

func lookup(unit string) (conversion, error) {
	conv, ok := table[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return conversion{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return conv, nil
}

// Normalize converts quantity from unit into the canonical base unit of the
// unit's family. O(1) table lookup, no allocation on the happy path.
func Normalize(quantity float64, unit string) (float64, error) {
	conv, err := lookup(unit)
	if err != nil {
		return 0, err
	}
	return quantity * conv.factor, nil
}

// Base returns the canonical base unit symbol for unit's family
func Base(unit string) (string, error) {
	conv, err := lookup(unit)
	if err != nil {
		return "", err
	}
	switch conv.family {
	case Mass:
		return BaseMass, nil
	case Volume:
		return BaseVolume, nil
	default:
		return BaseCount, nil
	}
}

// FamilyOf returns the measurement family of unit
func FamilyOf(unit string) (Family, error) {
	conv, err := lookup(unit)
	if err != nil {
		return 0, err
	}
	return conv.family, nil
}
