package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

func TestCatalogRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()

	repo.AddProduct(entities.Product{ID: "PROD-1", Name: "Soap", RecipeID: "REC-1"})
	repo.AddSupplierMaterial(entities.SupplierMaterial{
		ID: "MAT-1", SupplierID: "SUP-1", Name: "Oil", Unit: "kg",
		UnitPrice: decimal.NewFromInt(50),
	})

	product, err := repo.GetProduct(ctx, "PROD-1")
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if product.Name != "Soap" || product.RecipeID != "REC-1" {
		t.Errorf("unexpected product: %+v", product)
	}

	material, err := repo.GetSupplierMaterial(ctx, "MAT-1")
	if err != nil {
		t.Fatalf("GetSupplierMaterial failed: %v", err)
	}
	if !material.UnitPrice.Equal(decimal.NewFromInt(50)) {
		t.Errorf("unexpected unit price %s", material.UnitPrice)
	}
}

func TestCatalogRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()

	if _, err := repo.GetProduct(ctx, "PROD-GONE"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetRecipeVariant(ctx, "RECV-GONE"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetSupplierLabel(ctx, "LBL-GONE"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInventoryRepository_KeyedBySupplier(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepository()

	repo.SetOnHand(entities.InventoryRecord{
		ItemType: entities.ItemMaterial, ItemID: "MAT-1", SupplierID: "SUP-1", Quantity: 10,
	})

	record, err := repo.GetOnHand(ctx, entities.ItemMaterial, "MAT-1", "SUP-1")
	if err != nil {
		t.Fatalf("GetOnHand failed: %v", err)
	}
	if record.Quantity != 10 {
		t.Errorf("expected quantity 10, got %v", record.Quantity)
	}

	// same item id under a different supplier is a distinct key
	if _, err := repo.GetOnHand(ctx, entities.ItemMaterial, "MAT-1", "SUP-2"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound for other supplier, got %v", err)
	}
	// same id under a different item type is a distinct key
	if _, err := repo.GetOnHand(ctx, entities.ItemPackaging, "MAT-1", "SUP-1"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound for other item type, got %v", err)
	}
}

func TestBatchRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBatchRepository()

	repo.AddBatch(entities.ProductionBatch{ID: "B-2"})
	repo.AddBatch(entities.ProductionBatch{ID: "B-1"})
	repo.AddBatch(entities.ProductionBatch{ID: "B-3"})

	batches, err := repo.ListBatches(ctx)
	if err != nil {
		t.Fatalf("ListBatches failed: %v", err)
	}
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	for i, want := range []entities.BatchID{"B-1", "B-2", "B-3"} {
		if batches[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, batches[i].ID)
		}
	}

	repo.RemoveBatch("B-2")
	if _, err := repo.GetBatch(ctx, "B-2"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound after removal, got %v", err)
	}
}
