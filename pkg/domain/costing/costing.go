// Package costing evaluates tax-inclusive line costs. All money values are
// decimal so cross-view totals compare exactly.
//
// Default-substitution policy: an absent tax rate means 0%; nothing else is
// defaulted here. Absent supplier names and absent inventory records are
// handled where those lookups happen (entities.UnknownSupplierName and the
// inventory matcher respectively).
package costing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Price is a unit price with its tax rate. Locked marks prices frozen by a
// recipe/formulation snapshot as opposed to freely editable supplier
// records; it is metadata only and never changes the arithmetic.
type Price struct {
	PerUnit    decimal.Decimal
	TaxPercent decimal.Decimal
	Locked     bool
}

// NewPrice creates an editable supplier price
func NewPrice(perUnit, taxPercent decimal.Decimal) Price {
	return Price{PerUnit: perUnit, TaxPercent: taxPercent}
}

// NewLockedPrice creates a formulation-snapshot price
func NewLockedPrice(perUnit, taxPercent decimal.Decimal) Price {
	return Price{PerUnit: perUnit, TaxPercent: taxPercent, Locked: true}
}

// TaxOrDefault applies the default-substitution policy for tax rates
func TaxOrDefault(tax *decimal.Decimal) decimal.Decimal {
	if tax == nil {
		return decimal.Zero
	}
	return *tax
}

// Cost computes the tax-inclusive total for quantity at price:
//
//	quantity × perUnit × (1 + taxPercent/100)
func Cost(quantity float64, price Price) decimal.Decimal {
	qty := decimal.NewFromFloat(quantity)
	taxFactor := decimal.NewFromInt(1).Add(price.TaxPercent.Div(hundred))
	return qty.Mul(price.PerUnit).Mul(taxFactor)
}

// Rebase converts a per-unit price to a price per canonical base unit, given
// the factor from one native unit to the base unit (e.g. per-gram price with
// factor 0.001 becomes a per-kg price)
func Rebase(price Price, unitFactor float64) Price {
	if unitFactor == 0 || unitFactor == 1 {
		return price
	}
	price.PerUnit = price.PerUnit.Div(decimal.NewFromFloat(unitFactor))
	return price
}

// Percent returns part as a percentage of total, short-circuiting to 0 when
// total is zero so empty analyses never produce NaN
func Percent(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	f, _ := part.Div(total).Mul(hundred).Float64()
	return f
}
