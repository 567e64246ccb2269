package events

import (
	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/entities"
)

const (
	BatchUpdatedEvent = "batch.updated"
	BatchDeletedEvent = "batch.deleted"

	InventoryAdjustedEvent = "inventory.adjusted"

	RecipeUpdatedEvent        = "recipe.updated"
	SupplierPriceChangedEvent = "supplier.price.changed"

	AnalysisComputedEvent   = "analysis.computed"
	ShortageIdentifiedEvent = "shortage.identified"
)

// ChangeEventTypes are the events that invalidate a computed analysis
var ChangeEventTypes = []string{
	BatchUpdatedEvent,
	BatchDeletedEvent,
	InventoryAdjustedEvent,
	RecipeUpdatedEvent,
	SupplierPriceChangedEvent,
}

type BatchUpdated struct {
	Batch entities.ProductionBatch `json:"batch"`
}

type BatchDeleted struct {
	BatchID entities.BatchID `json:"batchId"`
}

type InventoryAdjusted struct {
	Record entities.InventoryRecord `json:"record"`
}

type RecipeUpdated struct {
	RecipeID entities.RecipeID `json:"recipeId"`
}

type SupplierPriceChanged struct {
	SupplierID entities.SupplierID `json:"supplierId"`
	ItemType   entities.ItemType   `json:"itemType"`
	ItemID     string              `json:"itemId"`
}

type AnalysisComputed struct {
	Analysis *dto.BatchRequirementsAnalysis `json:"analysis"`
}

type ShortageIdentified struct {
	BatchID entities.BatchID         `json:"batchId"`
	Line    entities.RequirementItem `json:"line"`
}

// NewBatchUpdatedEvent signals that a batch's contents changed
func NewBatchUpdatedEvent(batch entities.ProductionBatch) Event {
	return NewEvent(BatchUpdatedEvent, string(batch.ID), BatchUpdated{Batch: batch})
}

// NewBatchDeletedEvent signals that a batch was removed
func NewBatchDeletedEvent(batchID entities.BatchID) Event {
	return NewEvent(BatchDeletedEvent, string(batchID), BatchDeleted{BatchID: batchID})
}

// NewInventoryAdjustedEvent signals an on-hand quantity change
func NewInventoryAdjustedEvent(record entities.InventoryRecord) Event {
	return NewEvent(InventoryAdjustedEvent, record.ItemID, InventoryAdjusted{Record: record})
}

// NewRecipeUpdatedEvent signals a formulation change
func NewRecipeUpdatedEvent(recipeID entities.RecipeID) Event {
	return NewEvent(RecipeUpdatedEvent, string(recipeID), RecipeUpdated{RecipeID: recipeID})
}

// NewSupplierPriceChangedEvent signals a supplier pricing change
func NewSupplierPriceChangedEvent(supplierID entities.SupplierID, itemType entities.ItemType, itemID string) Event {
	return NewEvent(SupplierPriceChangedEvent, string(supplierID), SupplierPriceChanged{
		SupplierID: supplierID,
		ItemType:   itemType,
		ItemID:     itemID,
	})
}

// NewAnalysisComputedEvent records a completed analysis
func NewAnalysisComputedEvent(analysis *dto.BatchRequirementsAnalysis) Event {
	return NewEvent(AnalysisComputedEvent, string(analysis.BatchID), AnalysisComputed{Analysis: analysis})
}

// NewShortageIdentifiedEvent records one critical shortage line
func NewShortageIdentifiedEvent(batchID entities.BatchID, line entities.RequirementItem) Event {
	return NewEvent(ShortageIdentifiedEvent, string(batchID), ShortageIdentified{
		BatchID: batchID,
		Line:    line,
	})
}
