package entities

// Supplier is a vendor record; its name is denormalized onto requirement
// lines so reports stay readable without further lookups
type Supplier struct {
	ID   SupplierID `json:"id"`
	Name string     `json:"name"`
}

// Product is a sellable good whose composition is defined by a recipe or a
// recipe variant
type Product struct {
	ID              ProductID `json:"id"`
	Name            string    `json:"name"`
	RecipeID        RecipeID  `json:"recipeId"`
	IsRecipeVariant bool      `json:"isRecipeVariant"`
}

// ProductVariant is one fill size of a product, with its packaging and label
// selections. FrontLabelSelectionID and BackLabelSelectionID are optional;
// an empty id means the slot is unused.
type ProductVariant struct {
	ID                   VariantID   `json:"id"`
	ProductID            ProductID   `json:"productId"`
	Name                 string      `json:"name"`
	FillQuantity         float64     `json:"fillQuantity"`
	FillUnit             string      `json:"fillUnit"`
	PackagingSelectionID  PackagingID `json:"packagingSelectionId"`
	FrontLabelSelectionID LabelID     `json:"frontLabelSelectionId,omitempty"`
	BackLabelSelectionID  LabelID     `json:"backLabelSelectionId,omitempty"`
}
