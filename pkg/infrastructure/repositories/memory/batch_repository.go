package memory

import (
	"context"
	"sort"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// BatchRepository provides in-memory batch storage
type BatchRepository struct {
	batches map[entities.BatchID]entities.ProductionBatch
}

// NewBatchRepository creates an empty in-memory batch store
func NewBatchRepository() *BatchRepository {
	return &BatchRepository{
		batches: make(map[entities.BatchID]entities.ProductionBatch),
	}
}

// Verify interface compliance
var _ repositories.BatchRepository = (*BatchRepository)(nil)

// AddBatch stores a batch, replacing any previous version
func (r *BatchRepository) AddBatch(batch entities.ProductionBatch) {
	r.batches[batch.ID] = batch
}

// RemoveBatch deletes a batch if present
func (r *BatchRepository) RemoveBatch(id entities.BatchID) {
	delete(r.batches, id)
}

// GetBatch returns the batch with the given id
func (r *BatchRepository) GetBatch(_ context.Context, id entities.BatchID) (*entities.ProductionBatch, error) {
	batch, ok := r.batches[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &batch, nil
}

// ListBatches returns all batches ordered by id
func (r *BatchRepository) ListBatches(_ context.Context) ([]*entities.ProductionBatch, error) {
	batches := make([]*entities.ProductionBatch, 0, len(r.batches))
	for id := range r.batches {
		batch := r.batches[id]
		batches = append(batches, &batch)
	}
	sort.Slice(batches, func(i, j int) bool { return batches[i].ID < batches[j].ID })
	return batches, nil
}
