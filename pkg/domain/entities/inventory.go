package entities

import "fmt"

// InventoryRecord is the on-hand quantity for an item at one supplier.
// Quantity is in Unit; an empty Unit means the quantity is already in the
// canonical base unit for the item's unit family.
type InventoryRecord struct {
	ItemType   ItemType   `json:"itemType"`
	ItemID     string     `json:"itemId"`
	SupplierID SupplierID `json:"supplierId"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit,omitempty"`
}

// NewInventoryRecord creates a validated InventoryRecord
func NewInventoryRecord(itemType ItemType, itemID string, supplierID SupplierID, quantity float64, unit string) (*InventoryRecord, error) {
	if itemID == "" {
		return nil, fmt.Errorf("item id cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %v", quantity)
	}

	return &InventoryRecord{
		ItemType:   itemType,
		ItemID:     itemID,
		SupplierID: supplierID,
		Quantity:   quantity,
		Unit:       unit,
	}, nil
}
