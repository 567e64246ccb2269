package entities

import "fmt"

// BatchID identifies a planned production run
type BatchID string

// ProductID identifies a sellable product
type ProductID string

// VariantID identifies one fill-size variant of a product
type VariantID string

// RecipeID identifies a recipe or recipe variant
type RecipeID string

// MaterialID identifies a supplier material record
type MaterialID string

// PackagingID identifies a supplier packaging record
type PackagingID string

// LabelID identifies a supplier label record
type LabelID string

// SupplierID identifies a supplier
type SupplierID string

// UnknownSupplierName is substituted when a requirement line references a
// supplier with no supplier record. This is the only place the fallback
// name is defined.
const UnknownSupplierName = "Unknown"

// ItemType discriminates the three kinds of requirement lines
type ItemType int

const (
	ItemMaterial ItemType = iota
	ItemPackaging
	ItemLabel
)

// String method for ItemType enum
func (t ItemType) String() string {
	switch t {
	case ItemMaterial:
		return "material"
	case ItemPackaging:
		return "packaging"
	case ItemLabel:
		return "label"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the discriminant as its string form
func (t ItemType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// ParseItemType parses the string form produced by String
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "material":
		return ItemMaterial, nil
	case "packaging":
		return ItemPackaging, nil
	case "label":
		return ItemLabel, nil
	default:
		return 0, fmt.Errorf("unknown item type %q", s)
	}
}
