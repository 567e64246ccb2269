package dto

import (
	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/domain/entities"
)

// BatchRequirementsAnalysis contains the complete output of one batch
// requirements run. It is derived, never persisted, and safe to share: the
// engine hands it out and never mutates it afterwards.
//
// Invariant: TotalCost == TotalMaterialCost + TotalPackagingCost +
// TotalLabelCost == Σ BySupplier[i].TotalCost == Σ ByProduct[i].TotalCost.
type BatchRequirementsAnalysis struct {
	BatchID   entities.BatchID `json:"batchId"`
	BatchName string           `json:"batchName"`

	Materials []entities.RequirementItem `json:"materials"`
	Packaging []entities.RequirementItem `json:"packaging"`
	Labels    []entities.RequirementItem `json:"labels"`

	TotalMaterialCost  decimal.Decimal `json:"totalMaterialCost"`
	TotalPackagingCost decimal.Decimal `json:"totalPackagingCost"`
	TotalLabelCost     decimal.Decimal `json:"totalLabelCost"`
	TotalCost          decimal.Decimal `json:"totalCost"`

	BySupplier []entities.SupplierRequirement `json:"bySupplier"`
	ByProduct  []entities.ProductRequirements `json:"byProduct"`

	// CriticalShortages is the order-preserving filter of all lines with
	// shortage > 0; ItemsWithoutInventory holds lines with no inventory
	// record at all.
	CriticalShortages     []entities.RequirementItem `json:"criticalShortages"`
	ItemsWithoutInventory []entities.RequirementItem `json:"itemsWithoutInventory"`
}
