package memory

import (
	"context"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

type inventoryKey struct {
	itemType   entities.ItemType
	itemID     string
	supplierID entities.SupplierID
}

// InventoryRepository provides in-memory on-hand storage keyed by
// (itemType, itemID, supplierID)
type InventoryRepository struct {
	records map[inventoryKey]entities.InventoryRecord
}

// NewInventoryRepository creates an empty in-memory inventory
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		records: make(map[inventoryKey]entities.InventoryRecord),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// SetOnHand records the on-hand quantity for an item
func (r *InventoryRepository) SetOnHand(record entities.InventoryRecord) {
	key := inventoryKey{record.ItemType, record.ItemID, record.SupplierID}
	r.records[key] = record
}

// GetOnHand returns the inventory record for the given key, or ErrNotFound
// when the item is not tracked
func (r *InventoryRepository) GetOnHand(_ context.Context, itemType entities.ItemType, itemID string, supplierID entities.SupplierID) (*entities.InventoryRecord, error) {
	record, ok := r.records[inventoryKey{itemType, itemID, supplierID}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &record, nil
}
