package requirements

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/units"
	"github.com/batchkit/batchreq/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/batchkit/batchreq/pkg/infrastructure/testing"
)

func TestExploder_IngredientScaling(t *testing.T) {
	ctx := context.Background()

	catalogRepo := memory.NewCatalogRepository()
	catalogRepo.AddSupplier(entities.Supplier{ID: "SUP-1", Name: "Acme"})
	catalogRepo.AddSupplierMaterial(entities.SupplierMaterial{
		ID:         "MAT-1",
		SupplierID: "SUP-1",
		Name:       "Base Oil",
		Unit:       "kg",
		UnitPrice:  decimal.NewFromInt(50),
		TaxPercent: decimal.NewFromInt(5),
	})
	catalogRepo.AddRecipe(entities.Recipe{
		ID: "REC-1",
		Ingredients: []entities.RecipeIngredient{
			{SupplierMaterialID: "MAT-1", Quantity: 0.01, Unit: "kg"},
		},
	})
	catalogRepo.AddProduct(entities.Product{ID: "PROD-1", Name: "Soap", RecipeID: "REC-1"})
	catalogRepo.AddProductVariant(entities.ProductVariant{
		ID:           "VAR-1",
		ProductID:    "PROD-1",
		Name:         "1 kg",
		FillQuantity: 1,
		FillUnit:     "kg",
	})

	exploder := NewExploder(catalogRepo, nil)
	lines, err := exploder.ExplodeBatchItem(ctx, "BATCH-1", entities.BatchItem{
		ProductID: "PROD-1",
		Variants: []entities.BatchVariantSpec{
			{VariantID: "VAR-1", TotalFillQuantity: 100, FillUnit: "kg"},
		},
	})
	if err != nil {
		t.Fatalf("ExplodeBatchItem failed: %v", err)
	}

	// 0.01 kg per kg of product × 100 kg = 1 kg at 50 with 5% tax
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line.Required != 1 {
		t.Errorf("expected required 1 kg, got %v", line.Required)
	}
	if line.Unit != "kg" {
		t.Errorf("expected unit kg, got %q", line.Unit)
	}
	if want := decimal.RequireFromString("52.5"); !line.TotalCost.Equal(want) {
		t.Errorf("expected total cost %s, got %s", want, line.TotalCost)
	}
	if line.SupplierName != "Acme" {
		t.Errorf("expected supplier name Acme, got %q", line.SupplierName)
	}
	if line.PriceLocked {
		t.Error("supplier-priced line must not be locked")
	}
}

func TestExploder_MissingReferencesSkipLines(t *testing.T) {
	ctx := context.Background()
	_, catalogRepo, _ := testhelpers.BuildSoapWorksScenario()
	exploder := NewExploder(catalogRepo, nil)

	// unknown product: whole item skipped, no error
	lines, err := exploder.ExplodeBatchItem(ctx, "BATCH-1", entities.BatchItem{
		ProductID: "PROD-GONE",
		Variants:  []entities.BatchVariantSpec{{VariantID: "VAR-SOAP-250", TotalFillQuantity: 1, FillUnit: "kg"}},
	})
	if err != nil {
		t.Fatalf("expected missing product to be skipped, got error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines for missing product, got %d", len(lines))
	}

	// unknown variant: that variant skipped, no error
	lines, err = exploder.ExplodeBatchItem(ctx, "BATCH-1", entities.BatchItem{
		ProductID: "PROD-SOAP",
		Variants:  []entities.BatchVariantSpec{{VariantID: "VAR-GONE", TotalFillQuantity: 1, FillUnit: "kg"}},
	})
	if err != nil {
		t.Fatalf("expected missing variant to be skipped, got error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines for missing variant, got %d", len(lines))
	}
}

func TestExploder_MissingSupplierMaterialSkipsLine(t *testing.T) {
	ctx := context.Background()

	catalogRepo := memory.NewCatalogRepository()
	catalogRepo.AddSupplier(entities.Supplier{ID: "SUP-1", Name: "Acme"})
	catalogRepo.AddSupplierMaterial(entities.SupplierMaterial{
		ID: "MAT-OK", SupplierID: "SUP-1", Name: "Present", Unit: "kg",
		UnitPrice: decimal.NewFromInt(10),
	})
	catalogRepo.AddRecipe(entities.Recipe{
		ID: "REC-1",
		Ingredients: []entities.RecipeIngredient{
			{SupplierMaterialID: "MAT-GONE", Quantity: 0.5, Unit: "kg"},
			{SupplierMaterialID: "MAT-OK", Quantity: 0.5, Unit: "kg"},
		},
	})
	catalogRepo.AddProduct(entities.Product{ID: "PROD-1", Name: "P", RecipeID: "REC-1"})
	catalogRepo.AddProductVariant(entities.ProductVariant{
		ID: "VAR-1", ProductID: "PROD-1", FillQuantity: 1, FillUnit: "kg",
	})

	exploder := NewExploder(catalogRepo, nil)
	lines, err := exploder.ExplodeBatchItem(ctx, "B", entities.BatchItem{
		ProductID: "PROD-1",
		Variants:  []entities.BatchVariantSpec{{VariantID: "VAR-1", TotalFillQuantity: 2, FillUnit: "kg"}},
	})
	if err != nil {
		t.Fatalf("ExplodeBatchItem failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected the present material only, got %d lines", len(lines))
	}
	if lines[0].ItemID != "MAT-OK" {
		t.Errorf("expected MAT-OK, got %s", lines[0].ItemID)
	}
}

func TestExploder_UnknownFillUnitFails(t *testing.T) {
	ctx := context.Background()
	_, catalogRepo, _ := testhelpers.BuildSoapWorksScenario()
	exploder := NewExploder(catalogRepo, nil)

	_, err := exploder.ExplodeBatchItem(ctx, "BATCH-1", entities.BatchItem{
		ProductID: "PROD-SOAP",
		Variants:  []entities.BatchVariantSpec{{VariantID: "VAR-SOAP-250", TotalFillQuantity: 100, FillUnit: "barrels"}},
	})
	if err == nil {
		t.Fatal("expected error for unknown fill unit")
	}
	if !errors.Is(err, units.ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestExploder_LabelSlotsAreIndependentLines(t *testing.T) {
	ctx := context.Background()
	_, catalogRepo, _ := testhelpers.BuildSoapWorksScenario()
	exploder := NewExploder(catalogRepo, nil)

	lines, err := exploder.ExplodeBatchItem(ctx, "BATCH-1", entities.BatchItem{
		ProductID: "PROD-SOAP",
		Variants:  []entities.BatchVariantSpec{{VariantID: "VAR-SOAP-250", TotalFillQuantity: 100, FillUnit: "kg"}},
	})
	if err != nil {
		t.Fatalf("ExplodeBatchItem failed: %v", err)
	}

	var labels []entities.RequirementItem
	for _, line := range lines {
		if line.ItemType == entities.ItemLabel {
			labels = append(labels, line)
		}
	}
	if len(labels) != 2 {
		t.Fatalf("expected front and back label lines, got %d", len(labels))
	}
	for _, label := range labels {
		if label.Required != 400 {
			t.Errorf("label %s: expected 400 pcs, got %v", label.ItemID, label.Required)
		}
	}
	if labels[0].ItemID == labels[1].ItemID {
		t.Error("front and back slots must emit distinct lines")
	}
}

func TestExploder_LockedFormulationPrice(t *testing.T) {
	ctx := context.Background()
	_, catalogRepo, _ := testhelpers.BuildSoapWorksScenario()
	exploder := NewExploder(catalogRepo, nil)

	lines, err := exploder.ExplodeBatchItem(ctx, "BATCH-1", entities.BatchItem{
		ProductID: "PROD-CREAM",
		Variants:  []entities.BatchVariantSpec{{VariantID: "VAR-CREAM-100", TotalFillQuantity: 10, FillUnit: "kg"}},
	})
	if err != nil {
		t.Fatalf("ExplodeBatchItem failed: %v", err)
	}

	var material *entities.RequirementItem
	for i := range lines {
		if lines[i].ItemType == entities.ItemMaterial {
			material = &lines[i]
		}
	}
	if material == nil {
		t.Fatal("expected a material line")
	}
	if !material.PriceLocked {
		t.Error("formulation-priced line must be locked")
	}
	if !material.UnitPrice.Equal(decimal.NewFromInt(45)) {
		t.Errorf("expected snapshot price 45, got %s", material.UnitPrice)
	}
	// 0.5 kg/kg × 10 kg = 5 kg at 45 with 5% tax
	if want := decimal.RequireFromString("236.25"); !material.TotalCost.Equal(want) {
		t.Errorf("expected total cost %s, got %s", want, material.TotalCost)
	}
}

func TestUnitsProduced(t *testing.T) {
	tests := []struct {
		name        string
		totalFill   float64
		fillUnit    string
		perUnit     float64
		perUnitUnit string
		want        int64
	}{
		{"exact division", 100, "kg", 250, "g", 400},
		{"cross unit", 10, "kg", 100, "g", 100},
		{"fractional floors", 0.3, "kg", 250, "g", 1},
		{"below one unit", 0.2, "kg", 250, "g", 0},
		{"zero fill", 0, "kg", 250, "g", 0},
		{"zero per-unit fill", 100, "kg", 0, "g", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnitsProduced(tt.totalFill, tt.fillUnit, tt.perUnit, tt.perUnitUnit)
			if err != nil {
				t.Fatalf("UnitsProduced failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("UnitsProduced(%v %s / %v %s) = %d, want %d",
					tt.totalFill, tt.fillUnit, tt.perUnit, tt.perUnitUnit, got, tt.want)
			}
		})
	}

	if _, err := UnitsProduced(1, "crates", 1, "g"); !errors.Is(err, units.ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}
