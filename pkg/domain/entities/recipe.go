package entities

import "github.com/shopspring/decimal"

// RecipeIngredient is one line of a recipe: a quantity of a supplier material
// per unit of product produced (e.g. grams of oil per kg of soap)
type RecipeIngredient struct {
	SupplierMaterialID MaterialID `json:"supplierMaterialId"`
	Quantity           float64    `json:"quantity"`
	Unit               string     `json:"unit"`
}

// Recipe is a product formulation priced against live supplier records
type Recipe struct {
	ID          RecipeID           `json:"id"`
	Name        string             `json:"name"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// RecipeVariantIngredient is a recipe-variant line. When UnitPrice is set the
// price was frozen when the formulation was saved and is treated as locked;
// when nil, pricing falls through to the supplier material record.
type RecipeVariantIngredient struct {
	SupplierMaterialID MaterialID       `json:"supplierMaterialId"`
	Quantity           float64          `json:"quantity"`
	Unit               string           `json:"unit"`
	UnitPrice          *decimal.Decimal `json:"unitPrice,omitempty"`
	TaxPercent         *decimal.Decimal `json:"taxPercent,omitempty"`
}

// RecipeVariant is a formulation snapshot with its own cost structure
type RecipeVariant struct {
	ID          RecipeID                  `json:"id"`
	Name        string                    `json:"name"`
	Ingredients []RecipeVariantIngredient `json:"ingredients"`
}
