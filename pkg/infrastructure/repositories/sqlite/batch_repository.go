package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// BatchRepository reads production batches from SQLite
type BatchRepository struct {
	db *sql.DB
}

// NewBatchRepository creates a batch repository over db
func NewBatchRepository(db *sql.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// Verify interface compliance
var _ repositories.BatchRepository = (*BatchRepository)(nil)

// GetBatch returns the batch with its items and variant specs in position order
func (r *BatchRepository) GetBatch(ctx context.Context, id entities.BatchID) (*entities.ProductionBatch, error) {
	var batch entities.ProductionBatch
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM batches WHERE id = ?`, string(id)).
		Scan(&batch.ID, &batch.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query batch %s: %w", id, err)
	}
	if err := r.loadItems(ctx, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// ListBatches returns all batches ordered by id
func (r *BatchRepository) ListBatches(ctx context.Context) ([]*entities.ProductionBatch, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM batches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var batches []*entities.ProductionBatch
	for rows.Next() {
		var batch entities.ProductionBatch
		if err := rows.Scan(&batch.ID, &batch.Name); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, &batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}

	for _, batch := range batches {
		if err := r.loadItems(ctx, batch); err != nil {
			return nil, err
		}
	}
	return batches, nil
}

func (r *BatchRepository) loadItems(ctx context.Context, batch *entities.ProductionBatch) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, product_id FROM batch_items WHERE batch_id = ? ORDER BY position`,
		string(batch.ID))
	if err != nil {
		return fmt.Errorf("query batch items %s: %w", batch.ID, err)
	}
	defer rows.Close()

	// item positions are needed to attach variant specs to the right item
	positions := make(map[int64]int)
	for rows.Next() {
		var position int64
		var item entities.BatchItem
		if err := rows.Scan(&position, &item.ProductID); err != nil {
			return fmt.Errorf("scan batch item: %w", err)
		}
		positions[position] = len(batch.Items)
		batch.Items = append(batch.Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate batch items: %w", err)
	}

	variantRows, err := r.db.QueryContext(ctx,
		`SELECT item_position, variant_id, total_fill_quantity, fill_unit
		 FROM batch_item_variants WHERE batch_id = ? ORDER BY item_position, position`,
		string(batch.ID))
	if err != nil {
		return fmt.Errorf("query batch item variants %s: %w", batch.ID, err)
	}
	defer variantRows.Close()

	for variantRows.Next() {
		var itemPosition int64
		var spec entities.BatchVariantSpec
		if err := variantRows.Scan(&itemPosition, &spec.VariantID, &spec.TotalFillQuantity, &spec.FillUnit); err != nil {
			return fmt.Errorf("scan batch item variant: %w", err)
		}
		idx, ok := positions[itemPosition]
		if !ok {
			return fmt.Errorf("batch %s variant spec references missing item position %d", batch.ID, itemPosition)
		}
		batch.Items[idx].Variants = append(batch.Items[idx].Variants, spec)
	}
	if err := variantRows.Err(); err != nil {
		return fmt.Errorf("iterate batch item variants: %w", err)
	}
	return nil
}
