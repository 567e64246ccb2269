package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// CatalogRepository reads the catalog from SQLite
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a catalog repository over db
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// GetProduct returns the product with the given id
func (r *CatalogRepository) GetProduct(ctx context.Context, id entities.ProductID) (*entities.Product, error) {
	var product entities.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, recipe_id, is_recipe_variant FROM products WHERE id = ?`, string(id)).
		Scan(&product.ID, &product.Name, &product.RecipeID, &product.IsRecipeVariant)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product %s: %w", id, err)
	}
	return &product, nil
}

// GetProductVariant returns the variant with the given id
func (r *CatalogRepository) GetProductVariant(ctx context.Context, id entities.VariantID) (*entities.ProductVariant, error) {
	var variant entities.ProductVariant
	err := r.db.QueryRowContext(ctx,
		`SELECT id, product_id, name, fill_quantity, fill_unit,
		        packaging_selection_id, front_label_selection_id, back_label_selection_id
		 FROM product_variants WHERE id = ?`, string(id)).
		Scan(&variant.ID, &variant.ProductID, &variant.Name, &variant.FillQuantity, &variant.FillUnit,
			&variant.PackagingSelectionID, &variant.FrontLabelSelectionID, &variant.BackLabelSelectionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product variant %s: %w", id, err)
	}
	return &variant, nil
}

// GetRecipe returns the recipe with its ingredient lines in position order
func (r *CatalogRepository) GetRecipe(ctx context.Context, id entities.RecipeID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM recipes WHERE id = ?`, string(id)).
		Scan(&recipe.ID, &recipe.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query recipe %s: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT supplier_material_id, quantity, unit
		 FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position`, string(id))
	if err != nil {
		return nil, fmt.Errorf("query recipe ingredients %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ingredient entities.RecipeIngredient
		if err := rows.Scan(&ingredient.SupplierMaterialID, &ingredient.Quantity, &ingredient.Unit); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe ingredients: %w", err)
	}
	return &recipe, nil
}

// GetRecipeVariant returns the recipe variant with its ingredient lines and
// optional snapshot prices
func (r *CatalogRepository) GetRecipeVariant(ctx context.Context, id entities.RecipeID) (*entities.RecipeVariant, error) {
	var variant entities.RecipeVariant
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM recipe_variants WHERE id = ?`, string(id)).
		Scan(&variant.ID, &variant.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query recipe variant %s: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT supplier_material_id, quantity, unit, unit_price, tax_percent
		 FROM recipe_variant_ingredients WHERE recipe_variant_id = ? ORDER BY position`, string(id))
	if err != nil {
		return nil, fmt.Errorf("query recipe variant ingredients %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ingredient entities.RecipeVariantIngredient
		var price, tax sql.NullString
		if err := rows.Scan(&ingredient.SupplierMaterialID, &ingredient.Quantity, &ingredient.Unit, &price, &tax); err != nil {
			return nil, fmt.Errorf("scan recipe variant ingredient: %w", err)
		}
		if price.Valid {
			parsed, err := parseDecimal(price.String)
			if err != nil {
				return nil, fmt.Errorf("parse snapshot price %q: %w", price.String, err)
			}
			ingredient.UnitPrice = &parsed
		}
		if tax.Valid {
			parsed, err := parseDecimal(tax.String)
			if err != nil {
				return nil, fmt.Errorf("parse snapshot tax %q: %w", tax.String, err)
			}
			ingredient.TaxPercent = &parsed
		}
		variant.Ingredients = append(variant.Ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe variant ingredients: %w", err)
	}
	return &variant, nil
}

// GetSupplier returns the supplier with the given id
func (r *CatalogRepository) GetSupplier(ctx context.Context, id entities.SupplierID) (*entities.Supplier, error) {
	var supplier entities.Supplier
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM suppliers WHERE id = ?`, string(id)).
		Scan(&supplier.ID, &supplier.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query supplier %s: %w", id, err)
	}
	return &supplier, nil
}

func (r *CatalogRepository) pricedItem(ctx context.Context, table, id string) (supplierID, name, unit string, price, tax decimal.Decimal, err error) {
	var priceStr, taxStr string
	err = r.db.QueryRowContext(ctx,
		`SELECT supplier_id, name, unit, unit_price, tax_percent FROM `+table+` WHERE id = ?`, id).
		Scan(&supplierID, &name, &unit, &priceStr, &taxStr)
	if errors.Is(err, sql.ErrNoRows) {
		err = repositories.ErrNotFound
		return
	}
	if err != nil {
		err = fmt.Errorf("query %s %s: %w", table, id, err)
		return
	}
	if price, err = parseDecimal(priceStr); err != nil {
		err = fmt.Errorf("parse %s %s unit price %q: %w", table, id, priceStr, err)
		return
	}
	if tax, err = parseDecimal(taxStr); err != nil {
		err = fmt.Errorf("parse %s %s tax %q: %w", table, id, taxStr, err)
		return
	}
	return
}

// GetSupplierMaterial returns the material record with the given id
func (r *CatalogRepository) GetSupplierMaterial(ctx context.Context, id entities.MaterialID) (*entities.SupplierMaterial, error) {
	supplierID, name, unit, price, tax, err := r.pricedItem(ctx, "supplier_materials", string(id))
	if err != nil {
		return nil, err
	}
	return &entities.SupplierMaterial{
		ID:         id,
		SupplierID: entities.SupplierID(supplierID),
		Name:       name,
		Unit:       unit,
		UnitPrice:  price,
		TaxPercent: tax,
	}, nil
}

// GetSupplierPackaging returns the packaging record with the given id
func (r *CatalogRepository) GetSupplierPackaging(ctx context.Context, id entities.PackagingID) (*entities.SupplierPackaging, error) {
	supplierID, name, unit, price, tax, err := r.pricedItem(ctx, "supplier_packaging", string(id))
	if err != nil {
		return nil, err
	}
	return &entities.SupplierPackaging{
		ID:         id,
		SupplierID: entities.SupplierID(supplierID),
		Name:       name,
		Unit:       unit,
		UnitPrice:  price,
		TaxPercent: tax,
	}, nil
}

// GetSupplierLabel returns the label record with the given id
func (r *CatalogRepository) GetSupplierLabel(ctx context.Context, id entities.LabelID) (*entities.SupplierLabel, error) {
	supplierID, name, unit, price, tax, err := r.pricedItem(ctx, "supplier_labels", string(id))
	if err != nil {
		return nil, err
	}
	return &entities.SupplierLabel{
		ID:         id,
		SupplierID: entities.SupplierID(supplierID),
		Name:       name,
		Unit:       unit,
		UnitPrice:  price,
		TaxPercent: tax,
	}, nil
}
