package requirements

import (
	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/costing"
	"github.com/batchkit/batchreq/pkg/domain/entities"
)

// Aggregate folds the flat requirement list into the three parallel views of
// one analysis: by category, by supplier, and by product→variant. Each view
// reproduces the same grand total. Group order is first-seen order from the
// explosion step; criticalShortages preserves insertion order exactly.
func Aggregate(batch *entities.ProductionBatch, lines []entities.RequirementItem) *dto.BatchRequirementsAnalysis {
	analysis := &dto.BatchRequirementsAnalysis{
		BatchID:   batch.ID,
		BatchName: batch.Name,

		Materials: []entities.RequirementItem{},
		Packaging: []entities.RequirementItem{},
		Labels:    []entities.RequirementItem{},

		TotalMaterialCost:  decimal.Zero,
		TotalPackagingCost: decimal.Zero,
		TotalLabelCost:     decimal.Zero,
		TotalCost:          decimal.Zero,

		BySupplier: []entities.SupplierRequirement{},
		ByProduct:  []entities.ProductRequirements{},

		CriticalShortages:     []entities.RequirementItem{},
		ItemsWithoutInventory: []entities.RequirementItem{},
	}

	supplierIdx := make(map[entities.SupplierID]int)
	productIdx := make(map[entities.ProductID]int)
	variantIdx := make(map[entities.ProductID]map[entities.VariantID]int)

	for _, line := range lines {
		// by category
		switch line.ItemType {
		case entities.ItemMaterial:
			analysis.Materials = append(analysis.Materials, line)
			analysis.TotalMaterialCost = analysis.TotalMaterialCost.Add(line.TotalCost)
		case entities.ItemPackaging:
			analysis.Packaging = append(analysis.Packaging, line)
			analysis.TotalPackagingCost = analysis.TotalPackagingCost.Add(line.TotalCost)
		case entities.ItemLabel:
			analysis.Labels = append(analysis.Labels, line)
			analysis.TotalLabelCost = analysis.TotalLabelCost.Add(line.TotalCost)
		}
		analysis.TotalCost = analysis.TotalCost.Add(line.TotalCost)

		// by supplier
		si, ok := supplierIdx[line.SupplierID]
		if !ok {
			si = len(analysis.BySupplier)
			supplierIdx[line.SupplierID] = si
			analysis.BySupplier = append(analysis.BySupplier, entities.SupplierRequirement{
				SupplierID:   line.SupplierID,
				SupplierName: line.SupplierName,
				Materials:    []entities.RequirementItem{},
				Packaging:    []entities.RequirementItem{},
				Labels:       []entities.RequirementItem{},
				TotalCost:    decimal.Zero,
			})
		}
		supplier := &analysis.BySupplier[si]
		switch line.ItemType {
		case entities.ItemMaterial:
			supplier.Materials = append(supplier.Materials, line)
		case entities.ItemPackaging:
			supplier.Packaging = append(supplier.Packaging, line)
		case entities.ItemLabel:
			supplier.Labels = append(supplier.Labels, line)
		}
		supplier.TotalCost = supplier.TotalCost.Add(line.TotalCost)

		// by product → variant
		pi, ok := productIdx[line.ProductID]
		if !ok {
			pi = len(analysis.ByProduct)
			productIdx[line.ProductID] = pi
			variantIdx[line.ProductID] = make(map[entities.VariantID]int)
			analysis.ByProduct = append(analysis.ByProduct, entities.ProductRequirements{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Variants:    []entities.VariantRequirements{},
				TotalCost:   decimal.Zero,
			})
		}
		product := &analysis.ByProduct[pi]
		vi, ok := variantIdx[line.ProductID][line.VariantID]
		if !ok {
			vi = len(product.Variants)
			variantIdx[line.ProductID][line.VariantID] = vi
			product.Variants = append(product.Variants, entities.VariantRequirements{
				VariantID:   line.VariantID,
				VariantName: line.VariantName,
				Materials:   []entities.RequirementItem{},
				Packaging:   []entities.RequirementItem{},
				Labels:      []entities.RequirementItem{},
				TotalCost:   decimal.Zero,
			})
		}
		variant := &product.Variants[vi]
		switch line.ItemType {
		case entities.ItemMaterial:
			variant.Materials = append(variant.Materials, line)
		case entities.ItemPackaging:
			variant.Packaging = append(variant.Packaging, line)
		case entities.ItemLabel:
			variant.Labels = append(variant.Labels, line)
		}
		variant.TotalCost = variant.TotalCost.Add(line.TotalCost)
		product.TotalCost = product.TotalCost.Add(line.TotalCost)

		// shortage views
		if line.Shortage > 0 {
			analysis.CriticalShortages = append(analysis.CriticalShortages, line)
		}
		if !line.Tracked {
			analysis.ItemsWithoutInventory = append(analysis.ItemsWithoutInventory, line)
		}
	}

	for i := range analysis.BySupplier {
		analysis.BySupplier[i].PercentOfTotal = costing.Percent(analysis.BySupplier[i].TotalCost, analysis.TotalCost)
	}
	for i := range analysis.ByProduct {
		analysis.ByProduct[i].PercentOfTotal = costing.Percent(analysis.ByProduct[i].TotalCost, analysis.TotalCost)
	}

	return analysis
}
