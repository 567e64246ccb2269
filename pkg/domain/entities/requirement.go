package entities

import "github.com/shopspring/decimal"

// ShortageSeverity is the presentational banding of a requirement line's
// shortage. It never feeds into cost totals.
type ShortageSeverity int

const (
	SeverityAvailable ShortageSeverity = iota
	SeverityWarning
	SeverityLow
	SeverityMedium
	SeverityHigh
)

// String method for ShortageSeverity enum
func (s ShortageSeverity) String() string {
	switch s {
	case SeverityAvailable:
		return "available"
	case SeverityWarning:
		return "warning"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its string form
func (s ShortageSeverity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// RequirementItem is one exploded, priced, shortage-annotated need.
// Quantities (Required/Available/Shortage) are in Unit, the canonical base
// unit of the item's unit family; UnitPrice is per that same unit.
//
// Invariants:
//
//	TotalCost == Required × UnitPrice × (1 + TaxPercent/100)
//	Shortage  == max(Required − Available, 0)
type RequirementItem struct {
	ItemType     ItemType         `json:"itemType"`
	ItemID       string           `json:"itemId"`
	ItemName     string           `json:"itemName"`
	SupplierID   SupplierID       `json:"supplierId"`
	SupplierName string           `json:"supplierName"`
	Required     float64          `json:"required"`
	Available    float64          `json:"available"`
	Shortage     float64          `json:"shortage"`
	Unit         string           `json:"unit"`
	UnitPrice    decimal.Decimal  `json:"unitPrice"`
	TaxPercent   decimal.Decimal  `json:"taxPercent"`
	TotalCost    decimal.Decimal  `json:"totalCost"`
	PriceLocked  bool             `json:"priceLocked"`
	Tracked      bool             `json:"tracked"`
	Severity     ShortageSeverity `json:"severity"`

	// Provenance for the by-product view
	ProductID   ProductID `json:"productId"`
	ProductName string    `json:"productName"`
	VariantID   VariantID `json:"variantId"`
	VariantName string    `json:"variantName"`
}

// SupplierRequirement groups requirement lines for one supplier, with its
// own category breakdown so a supplier card can render without re-filtering
type SupplierRequirement struct {
	SupplierID     SupplierID        `json:"supplierId"`
	SupplierName   string            `json:"supplierName"`
	Materials      []RequirementItem `json:"materials"`
	Packaging      []RequirementItem `json:"packaging"`
	Labels         []RequirementItem `json:"labels"`
	TotalCost      decimal.Decimal   `json:"totalCost"`
	PercentOfTotal float64           `json:"percentOfTotal"`
}

// VariantRequirements groups requirement lines for one variant of a product
type VariantRequirements struct {
	VariantID   VariantID         `json:"variantId"`
	VariantName string            `json:"variantName"`
	Materials   []RequirementItem `json:"materials"`
	Packaging   []RequirementItem `json:"packaging"`
	Labels      []RequirementItem `json:"labels"`
	TotalCost   decimal.Decimal   `json:"totalCost"`
}

// ProductRequirements rolls up variant requirements per product; TotalCost
// is the sum over its variants
type ProductRequirements struct {
	ProductID      ProductID             `json:"productId"`
	ProductName    string                `json:"productName"`
	Variants       []VariantRequirements `json:"variants"`
	TotalCost      decimal.Decimal       `json:"totalCost"`
	PercentOfTotal float64               `json:"percentOfTotal"`
}
