package memory

import (
	"context"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// CatalogRepository provides in-memory catalog storage. Writes happen
// during setup; analysis calls only read, so no locking is needed.
type CatalogRepository struct {
	products       map[entities.ProductID]entities.Product
	variants       map[entities.VariantID]entities.ProductVariant
	recipes        map[entities.RecipeID]entities.Recipe
	recipeVariants map[entities.RecipeID]entities.RecipeVariant
	suppliers      map[entities.SupplierID]entities.Supplier
	materials      map[entities.MaterialID]entities.SupplierMaterial
	packaging      map[entities.PackagingID]entities.SupplierPackaging
	labels         map[entities.LabelID]entities.SupplierLabel
}

// NewCatalogRepository creates an empty in-memory catalog
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products:       make(map[entities.ProductID]entities.Product),
		variants:       make(map[entities.VariantID]entities.ProductVariant),
		recipes:        make(map[entities.RecipeID]entities.Recipe),
		recipeVariants: make(map[entities.RecipeID]entities.RecipeVariant),
		suppliers:      make(map[entities.SupplierID]entities.Supplier),
		materials:      make(map[entities.MaterialID]entities.SupplierMaterial),
		packaging:      make(map[entities.PackagingID]entities.SupplierPackaging),
		labels:         make(map[entities.LabelID]entities.SupplierLabel),
	}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// AddProduct adds a product to the catalog
func (r *CatalogRepository) AddProduct(product entities.Product) {
	r.products[product.ID] = product
}

// AddProductVariant adds a product variant to the catalog
func (r *CatalogRepository) AddProductVariant(variant entities.ProductVariant) {
	r.variants[variant.ID] = variant
}

// AddRecipe adds a recipe to the catalog
func (r *CatalogRepository) AddRecipe(recipe entities.Recipe) {
	r.recipes[recipe.ID] = recipe
}

// AddRecipeVariant adds a recipe variant to the catalog
func (r *CatalogRepository) AddRecipeVariant(variant entities.RecipeVariant) {
	r.recipeVariants[variant.ID] = variant
}

// AddSupplier adds a supplier to the catalog
func (r *CatalogRepository) AddSupplier(supplier entities.Supplier) {
	r.suppliers[supplier.ID] = supplier
}

// AddSupplierMaterial adds a material pricing record to the catalog
func (r *CatalogRepository) AddSupplierMaterial(material entities.SupplierMaterial) {
	r.materials[material.ID] = material
}

// AddSupplierPackaging adds a packaging pricing record to the catalog
func (r *CatalogRepository) AddSupplierPackaging(packaging entities.SupplierPackaging) {
	r.packaging[packaging.ID] = packaging
}

// AddSupplierLabel adds a label pricing record to the catalog
func (r *CatalogRepository) AddSupplierLabel(label entities.SupplierLabel) {
	r.labels[label.ID] = label
}

// GetProduct returns the product with the given id
func (r *CatalogRepository) GetProduct(_ context.Context, id entities.ProductID) (*entities.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &product, nil
}

// GetProductVariant returns the variant with the given id
func (r *CatalogRepository) GetProductVariant(_ context.Context, id entities.VariantID) (*entities.ProductVariant, error) {
	variant, ok := r.variants[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &variant, nil
}

// GetRecipe returns the recipe with the given id
func (r *CatalogRepository) GetRecipe(_ context.Context, id entities.RecipeID) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &recipe, nil
}

// GetRecipeVariant returns the recipe variant with the given id
func (r *CatalogRepository) GetRecipeVariant(_ context.Context, id entities.RecipeID) (*entities.RecipeVariant, error) {
	variant, ok := r.recipeVariants[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &variant, nil
}

// GetSupplier returns the supplier with the given id
func (r *CatalogRepository) GetSupplier(_ context.Context, id entities.SupplierID) (*entities.Supplier, error) {
	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &supplier, nil
}

// GetSupplierMaterial returns the material record with the given id
func (r *CatalogRepository) GetSupplierMaterial(_ context.Context, id entities.MaterialID) (*entities.SupplierMaterial, error) {
	material, ok := r.materials[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &material, nil
}

// GetSupplierPackaging returns the packaging record with the given id
func (r *CatalogRepository) GetSupplierPackaging(_ context.Context, id entities.PackagingID) (*entities.SupplierPackaging, error) {
	packaging, ok := r.packaging[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &packaging, nil
}

// GetSupplierLabel returns the label record with the given id
func (r *CatalogRepository) GetSupplierLabel(_ context.Context, id entities.LabelID) (*entities.SupplierLabel, error) {
	label, ok := r.labels[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &label, nil
}
