package entities

import "fmt"

// BatchVariantSpec is the planned output for one variant within a batch item
type BatchVariantSpec struct {
	VariantID         VariantID `json:"variantId"`
	TotalFillQuantity float64   `json:"totalFillQuantity"`
	FillUnit          string    `json:"fillUnit"`
}

// BatchItem is one product entry in a production batch, with one or more
// variant quantity specs
type BatchItem struct {
	ProductID ProductID          `json:"productId"`
	Variants  []BatchVariantSpec `json:"variants"`
}

// ProductionBatch identifies a planned production run. It is treated as an
// immutable snapshot for the duration of one analysis.
type ProductionBatch struct {
	ID    BatchID     `json:"id"`
	Name  string      `json:"name"`
	Items []BatchItem `json:"items"`
}

// NewProductionBatch creates a validated ProductionBatch
func NewProductionBatch(id BatchID, name string, items []BatchItem) (*ProductionBatch, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("batch id cannot be empty")
	}
	for i, item := range items {
		if string(item.ProductID) == "" {
			return nil, fmt.Errorf("batch item %d: product id cannot be empty", i)
		}
		for j, spec := range item.Variants {
			if string(spec.VariantID) == "" {
				return nil, fmt.Errorf("batch item %d variant %d: variant id cannot be empty", i, j)
			}
			if spec.TotalFillQuantity < 0 {
				return nil, fmt.Errorf("batch item %d variant %d: total fill quantity cannot be negative, got %v", i, j, spec.TotalFillQuantity)
			}
		}
	}

	return &ProductionBatch{
		ID:    id,
		Name:  name,
		Items: items,
	}, nil
}
