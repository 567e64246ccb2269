package testing

import (
	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/infrastructure/repositories/memory"
)

// BuildSoapWorksScenario builds a small soap-factory dataset used across the
// test suite and the demo seed: two suppliers, a plain recipe product, a
// recipe-variant product with a locked formulation price, and an inventory
// snapshot that covers tracked, tracked-at-zero and untracked items.
//
// Batch BATCH-1 plans 100 kg of lavender soap in 250 g jars (400 units) and
// 10 kg of chamomile cream in 100 g jars (100 units).
func BuildSoapWorksScenario() (*memory.BatchRepository, *memory.CatalogRepository, *memory.InventoryRepository) {
	batchRepo := memory.NewBatchRepository()
	catalogRepo := memory.NewCatalogRepository()
	inventoryRepo := memory.NewInventoryRepository()

	catalogRepo.AddSupplier(entities.Supplier{ID: "SUP-OILS", Name: "Aegean Oils"})
	catalogRepo.AddSupplier(entities.Supplier{ID: "SUP-PACK", Name: "Northpack"})

	catalogRepo.AddSupplierMaterial(entities.SupplierMaterial{
		ID:         "MAT-OLIVE",
		SupplierID: "SUP-OILS",
		Name:       "Olive Oil",
		Unit:       "kg",
		UnitPrice:  decimal.NewFromInt(50),
		TaxPercent: decimal.NewFromInt(5),
	})
	catalogRepo.AddSupplierMaterial(entities.SupplierMaterial{
		ID:         "MAT-LYE",
		SupplierID: "SUP-OILS",
		Name:       "Lye",
		Unit:       "g",
		UnitPrice:  decimal.RequireFromString("0.02"),
		TaxPercent: decimal.Zero,
	})
	catalogRepo.AddSupplierMaterial(entities.SupplierMaterial{
		ID:         "MAT-LAV",
		SupplierID: "SUP-OILS",
		Name:       "Lavender Essential Oil",
		Unit:       "kg",
		UnitPrice:  decimal.NewFromInt(200),
		TaxPercent: decimal.NewFromInt(5),
	})

	catalogRepo.AddSupplierPackaging(entities.SupplierPackaging{
		ID:         "PKG-JAR",
		SupplierID: "SUP-PACK",
		Name:       "Glass Jar",
		Unit:       "pcs",
		UnitPrice:  decimal.RequireFromString("1.2"),
		TaxPercent: decimal.Zero,
	})
	catalogRepo.AddSupplierLabel(entities.SupplierLabel{
		ID:         "LBL-FRONT",
		SupplierID: "SUP-PACK",
		Name:       "Front Label",
		Unit:       "pcs",
		UnitPrice:  decimal.RequireFromString("0.1"),
		TaxPercent: decimal.Zero,
	})
	catalogRepo.AddSupplierLabel(entities.SupplierLabel{
		ID:         "LBL-BACK",
		SupplierID: "SUP-PACK",
		Name:       "Back Label",
		Unit:       "pcs",
		UnitPrice:  decimal.RequireFromString("0.05"),
		TaxPercent: decimal.Zero,
	})

	catalogRepo.AddRecipe(entities.Recipe{
		ID:   "REC-SOAP",
		Name: "Lavender Soap Base",
		Ingredients: []entities.RecipeIngredient{
			{SupplierMaterialID: "MAT-OLIVE", Quantity: 0.75, Unit: "kg"},
			{SupplierMaterialID: "MAT-LYE", Quantity: 95, Unit: "g"},
			{SupplierMaterialID: "MAT-LAV", Quantity: 0.01, Unit: "kg"},
		},
	})

	lockedPrice := decimal.NewFromInt(45)
	lockedTax := decimal.NewFromInt(5)
	catalogRepo.AddRecipeVariant(entities.RecipeVariant{
		ID:   "RECV-CREAM",
		Name: "Chamomile Cream v2",
		Ingredients: []entities.RecipeVariantIngredient{
			{SupplierMaterialID: "MAT-OLIVE", Quantity: 0.5, Unit: "kg", UnitPrice: &lockedPrice, TaxPercent: &lockedTax},
		},
	})

	catalogRepo.AddProduct(entities.Product{ID: "PROD-SOAP", Name: "Lavender Soap", RecipeID: "REC-SOAP"})
	catalogRepo.AddProduct(entities.Product{ID: "PROD-CREAM", Name: "Chamomile Cream", RecipeID: "RECV-CREAM", IsRecipeVariant: true})

	catalogRepo.AddProductVariant(entities.ProductVariant{
		ID:                    "VAR-SOAP-250",
		ProductID:             "PROD-SOAP",
		Name:                  "250 g",
		FillQuantity:          250,
		FillUnit:              "g",
		PackagingSelectionID:  "PKG-JAR",
		FrontLabelSelectionID: "LBL-FRONT",
		BackLabelSelectionID:  "LBL-BACK",
	})
	catalogRepo.AddProductVariant(entities.ProductVariant{
		ID:                    "VAR-CREAM-100",
		ProductID:             "PROD-CREAM",
		Name:                  "100 g",
		FillQuantity:          100,
		FillUnit:              "g",
		PackagingSelectionID:  "PKG-JAR",
		FrontLabelSelectionID: "LBL-FRONT",
	})

	inventoryRepo.SetOnHand(entities.InventoryRecord{ItemType: entities.ItemMaterial, ItemID: "MAT-OLIVE", SupplierID: "SUP-OILS", Quantity: 50, Unit: "kg"})
	inventoryRepo.SetOnHand(entities.InventoryRecord{ItemType: entities.ItemMaterial, ItemID: "MAT-LYE", SupplierID: "SUP-OILS", Quantity: 0, Unit: "kg"})
	// MAT-LAV deliberately has no record (untracked)
	inventoryRepo.SetOnHand(entities.InventoryRecord{ItemType: entities.ItemPackaging, ItemID: "PKG-JAR", SupplierID: "SUP-PACK", Quantity: 100})
	inventoryRepo.SetOnHand(entities.InventoryRecord{ItemType: entities.ItemLabel, ItemID: "LBL-FRONT", SupplierID: "SUP-PACK", Quantity: 1000})
	// LBL-BACK deliberately has no record (untracked)

	batchRepo.AddBatch(entities.ProductionBatch{
		ID:   "BATCH-1",
		Name: "Spring Run",
		Items: []entities.BatchItem{
			{
				ProductID: "PROD-SOAP",
				Variants: []entities.BatchVariantSpec{
					{VariantID: "VAR-SOAP-250", TotalFillQuantity: 100, FillUnit: "kg"},
				},
			},
			{
				ProductID: "PROD-CREAM",
				Variants: []entities.BatchVariantSpec{
					{VariantID: "VAR-CREAM-100", TotalFillQuantity: 10, FillUnit: "kg"},
				},
			},
		},
	})

	return batchRepo, catalogRepo, inventoryRepo
}
