package repositories

import (
	"context"

	"github.com/batchkit/batchreq/pkg/domain/entities"
)

// BatchRepository provides read-only access to production batches
type BatchRepository interface {
	GetBatch(ctx context.Context, id entities.BatchID) (*entities.ProductionBatch, error)
	ListBatches(ctx context.Context) ([]*entities.ProductionBatch, error)
}
