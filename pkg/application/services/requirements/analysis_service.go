package requirements

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// AnalysisService computes a complete BatchRequirementsAnalysis from
// point-in-time repository snapshots. One call is one pure computation: the
// service holds no state between calls, so concurrent analyses never
// interfere.
type AnalysisService struct {
	log *slog.Logger
}

// NewAnalysisService creates an AnalysisService. A nil logger falls back to
// slog.Default().
func NewAnalysisService(log *slog.Logger) *AnalysisService {
	if log == nil {
		log = slog.Default()
	}
	return &AnalysisService{log: log}
}

// Analyze loads the batch and computes its requirements analysis
func (s *AnalysisService) Analyze(
	ctx context.Context,
	batchID entities.BatchID,
	batchRepo repositories.BatchRepository,
	catalogRepo repositories.CatalogRepository,
	inventoryRepo repositories.InventoryRepository,
) (*dto.BatchRequirementsAnalysis, error) {
	batch, err := batchRepo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load batch %s: %w", batchID, err)
	}
	return s.AnalyzeBatch(ctx, batch, catalogRepo, inventoryRepo)
}

// AnalyzeBatch explodes every batch item, matches the lines against
// inventory, aggregates the three views and verifies that they agree. A
// batch with no items, or items that all resolve to nothing to produce,
// yields an analysis with empty lists and zero totals.
func (s *AnalysisService) AnalyzeBatch(
	ctx context.Context,
	batch *entities.ProductionBatch,
	catalogRepo repositories.CatalogRepository,
	inventoryRepo repositories.InventoryRepository,
) (*dto.BatchRequirementsAnalysis, error) {
	exploder := NewExploder(catalogRepo, s.log)
	matcher := NewMatcher(inventoryRepo, s.log)

	var lines []entities.RequirementItem
	for _, item := range batch.Items {
		exploded, err := exploder.ExplodeBatchItem(ctx, batch.ID, item)
		if err != nil {
			return nil, fmt.Errorf("explode batch item %s: %w", item.ProductID, err)
		}
		for _, line := range exploded {
			matched, err := matcher.Match(ctx, line)
			if err != nil {
				return nil, err
			}
			lines = append(lines, matched)
		}
	}

	analysis := Aggregate(batch, lines)
	if err := verifyTotals(analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// verifyTotals asserts the cross-view invariant before the analysis is
// handed out. A mismatch is an aggregation bug, never a data condition.
func verifyTotals(analysis *dto.BatchRequirementsAnalysis) error {
	byCategory := analysis.TotalMaterialCost.
		Add(analysis.TotalPackagingCost).
		Add(analysis.TotalLabelCost)

	bySupplier := decimal.Zero
	for _, supplier := range analysis.BySupplier {
		bySupplier = bySupplier.Add(supplier.TotalCost)
	}

	byProduct := decimal.Zero
	for _, product := range analysis.ByProduct {
		byProduct = byProduct.Add(product.TotalCost)
	}

	if !analysis.TotalCost.Equal(byCategory) ||
		!analysis.TotalCost.Equal(bySupplier) ||
		!analysis.TotalCost.Equal(byProduct) {
		return fmt.Errorf(
			"aggregation views disagree for batch %s: total=%s category=%s supplier=%s product=%s",
			analysis.BatchID, analysis.TotalCost, byCategory, bySupplier, byProduct)
	}
	return nil
}
