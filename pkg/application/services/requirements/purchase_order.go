package requirements

import (
	"context"
	"log/slog"

	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// SupplierShortages filters an analysis's critical shortages down to one
// supplier, preserving order. This is the input a per-supplier
// purchase-order draft starts from.
func SupplierShortages(analysis *dto.BatchRequirementsAnalysis, supplierID entities.SupplierID) []entities.RequirementItem {
	var shortages []entities.RequirementItem
	for _, line := range analysis.CriticalShortages {
		if line.SupplierID == supplierID {
			shortages = append(shortages, line)
		}
	}
	return shortages
}

// RefreshShortages re-matches the given lines against current inventory and
// keeps only those still short. The analysis only guarantees shortages as of
// its snapshot, so anything about to write a purchase order must call this
// immediately before writing.
func RefreshShortages(ctx context.Context, lines []entities.RequirementItem, inventoryRepo repositories.InventoryRepository, log *slog.Logger) ([]entities.RequirementItem, error) {
	matcher := NewMatcher(inventoryRepo, log)

	var fresh []entities.RequirementItem
	for _, line := range lines {
		matched, err := matcher.Match(ctx, line)
		if err != nil {
			return nil, err
		}
		if matched.Shortage > 0 {
			fresh = append(fresh, matched)
		}
	}
	return fresh, nil
}
