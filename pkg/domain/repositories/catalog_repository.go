package repositories

import (
	"context"

	"github.com/batchkit/batchreq/pkg/domain/entities"
)

// CatalogRepository provides read-only access to the product/recipe/supplier
// catalog. All lookups return ErrNotFound for absent ids.
type CatalogRepository interface {
	GetProduct(ctx context.Context, id entities.ProductID) (*entities.Product, error)
	GetProductVariant(ctx context.Context, id entities.VariantID) (*entities.ProductVariant, error)
	GetRecipe(ctx context.Context, id entities.RecipeID) (*entities.Recipe, error)
	GetRecipeVariant(ctx context.Context, id entities.RecipeID) (*entities.RecipeVariant, error)
	GetSupplier(ctx context.Context, id entities.SupplierID) (*entities.Supplier, error)
	GetSupplierMaterial(ctx context.Context, id entities.MaterialID) (*entities.SupplierMaterial, error)
	GetSupplierPackaging(ctx context.Context, id entities.PackagingID) (*entities.SupplierPackaging, error)
	GetSupplierLabel(ctx context.Context, id entities.LabelID) (*entities.SupplierLabel, error)
}
