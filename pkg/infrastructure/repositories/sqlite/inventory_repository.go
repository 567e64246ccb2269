package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// InventoryRepository reads on-hand quantities from SQLite
type InventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates an inventory repository over db
func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// GetOnHand returns the inventory record for (itemType, itemID, supplierID),
// or ErrNotFound when the item is not tracked
func (r *InventoryRepository) GetOnHand(ctx context.Context, itemType entities.ItemType, itemID string, supplierID entities.SupplierID) (*entities.InventoryRecord, error) {
	record := entities.InventoryRecord{
		ItemType:   itemType,
		ItemID:     itemID,
		SupplierID: supplierID,
	}
	err := r.db.QueryRowContext(ctx,
		`SELECT quantity, unit FROM inventory WHERE item_type = ? AND item_id = ? AND supplier_id = ?`,
		itemType.String(), itemID, string(supplierID)).
		Scan(&record.Quantity, &record.Unit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory %s/%s/%s: %w", itemType, itemID, supplierID, err)
	}
	return &record, nil
}
