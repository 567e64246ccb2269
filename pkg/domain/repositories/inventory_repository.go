package repositories

import (
	"context"

	"github.com/batchkit/batchreq/pkg/domain/entities"
)

// InventoryRepository provides read-only access to on-hand quantities,
// keyed by (itemType, itemID, supplierID). ErrNotFound means the item is
// not tracked at all, which is distinct from a record with zero quantity.
type InventoryRepository interface {
	GetOnHand(ctx context.Context, itemType entities.ItemType, itemID string, supplierID entities.SupplierID) (*entities.InventoryRecord, error)
}
