package requirements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/batchkit/batchreq/pkg/domain/costing"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
	"github.com/batchkit/batchreq/pkg/domain/units"
)

// Exploder walks one batch item down through the product's effective recipe
// and the variant's packaging/label selections, emitting priced requirement
// lines. Missing references (product, variant, recipe, supplier record) skip
// the affected lines with a data-quality warning instead of aborting the
// batch; unknown units abort, since they would corrupt every downstream
// total.
type Exploder struct {
	catalog repositories.CatalogRepository
	log     *slog.Logger
}

// NewExploder creates an Exploder over the given catalog. A nil logger
// falls back to slog.Default().
func NewExploder(catalog repositories.CatalogRepository, log *slog.Logger) *Exploder {
	if log == nil {
		log = slog.Default()
	}
	return &Exploder{catalog: catalog, log: log}
}

// ingredientLine is a resolved recipe line; snapshot is non-nil when the
// formulation froze its own price
type ingredientLine struct {
	materialID entities.MaterialID
	quantity   float64
	unit       string
	snapshot   *costing.Price
}

// UnitsProduced computes how many physical units a fill plan yields:
// total fill quantity divided by the variant's per-unit fill, floored to a
// whole count. A floor of zero (including fills smaller than one unit)
// means nothing to produce. Both quantities may be in any unit of the same
// family.
func UnitsProduced(totalFill float64, fillUnit string, perUnitFill float64, perUnitFillUnit string) (int64, error) {
	total, err := units.Normalize(totalFill, fillUnit)
	if err != nil {
		return 0, err
	}
	per, err := units.Normalize(perUnitFill, perUnitFillUnit)
	if err != nil {
		return 0, err
	}
	if per <= 0 || total <= 0 {
		return 0, nil
	}
	// tolerance absorbs binary floating-point error so a fill that is an
	// exact multiple in decimal terms never loses a unit (10 / 0.1 is
	// 99.999… in float64)
	return int64(math.Floor(total/per + 1e-9)), nil
}

// ExplodeBatchItem emits the requirement lines for one batch item: recipe
// materials scaled by total fill quantity, plus packaging and label lines
// per unit produced. Lines carry no availability data yet; the matcher
// fills that in.
func (e *Exploder) ExplodeBatchItem(ctx context.Context, batchID entities.BatchID, item entities.BatchItem) ([]entities.RequirementItem, error) {
	product, err := e.catalog.GetProduct(ctx, item.ProductID)
	if errors.Is(err, repositories.ErrNotFound) {
		e.log.Warn("skipping batch item: product not found",
			"batch", batchID, "product", item.ProductID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", item.ProductID, err)
	}

	var lines []entities.RequirementItem
	for _, spec := range item.Variants {
		variantLines, err := e.explodeVariant(ctx, batchID, product, spec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, variantLines...)
	}
	return lines, nil
}

func (e *Exploder) explodeVariant(ctx context.Context, batchID entities.BatchID, product *entities.Product, spec entities.BatchVariantSpec) ([]entities.RequirementItem, error) {
	variant, err := e.catalog.GetProductVariant(ctx, spec.VariantID)
	if errors.Is(err, repositories.ErrNotFound) {
		e.log.Warn("skipping variant: variant not found",
			"batch", batchID, "product", product.ID, "variant", spec.VariantID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load variant %s: %w", spec.VariantID, err)
	}

	fillBase, err := units.Normalize(spec.TotalFillQuantity, spec.FillUnit)
	if err != nil {
		return nil, fmt.Errorf("batch %s variant %s fill quantity: %w", batchID, spec.VariantID, err)
	}

	lines, err := e.explodeMaterials(ctx, batchID, product, variant, fillBase)
	if err != nil {
		return nil, err
	}

	produced, err := UnitsProduced(spec.TotalFillQuantity, spec.FillUnit, variant.FillQuantity, variant.FillUnit)
	if err != nil {
		return nil, fmt.Errorf("batch %s variant %s units produced: %w", batchID, spec.VariantID, err)
	}
	if produced > 0 {
		packLines, err := e.explodePackaging(ctx, batchID, product, variant, produced)
		if err != nil {
			return nil, err
		}
		lines = append(lines, packLines...)

		labelLines, err := e.explodeLabels(ctx, batchID, product, variant, produced)
		if err != nil {
			return nil, err
		}
		lines = append(lines, labelLines...)
	}

	return lines, nil
}

// resolveIngredients returns the product's effective recipe lines: the
// recipe variant's cost structure when the product references one, the
// plain recipe otherwise
func (e *Exploder) resolveIngredients(ctx context.Context, batchID entities.BatchID, product *entities.Product) ([]ingredientLine, error) {
	if product.IsRecipeVariant {
		rv, err := e.catalog.GetRecipeVariant(ctx, product.RecipeID)
		if errors.Is(err, repositories.ErrNotFound) {
			e.log.Warn("skipping materials: recipe variant not found",
				"batch", batchID, "product", product.ID, "recipe", product.RecipeID)
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("load recipe variant %s: %w", product.RecipeID, err)
		}

		lines := make([]ingredientLine, 0, len(rv.Ingredients))
		for _, ing := range rv.Ingredients {
			line := ingredientLine{
				materialID: ing.SupplierMaterialID,
				quantity:   ing.Quantity,
				unit:       ing.Unit,
			}
			if ing.UnitPrice != nil {
				price := costing.NewLockedPrice(*ing.UnitPrice, costing.TaxOrDefault(ing.TaxPercent))
				line.snapshot = &price
			}
			lines = append(lines, line)
		}
		return lines, nil
	}

	recipe, err := e.catalog.GetRecipe(ctx, product.RecipeID)
	if errors.Is(err, repositories.ErrNotFound) {
		e.log.Warn("skipping materials: recipe not found",
			"batch", batchID, "product", product.ID, "recipe", product.RecipeID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load recipe %s: %w", product.RecipeID, err)
	}

	lines := make([]ingredientLine, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		lines = append(lines, ingredientLine{
			materialID: ing.SupplierMaterialID,
			quantity:   ing.Quantity,
			unit:       ing.Unit,
		})
	}
	return lines, nil
}

func (e *Exploder) explodeMaterials(ctx context.Context, batchID entities.BatchID, product *entities.Product, variant *entities.ProductVariant, fillBase float64) ([]entities.RequirementItem, error) {
	ingredients, err := e.resolveIngredients(ctx, batchID, product)
	if err != nil {
		return nil, err
	}

	var lines []entities.RequirementItem
	for _, ing := range ingredients {
		material, err := e.catalog.GetSupplierMaterial(ctx, ing.materialID)
		if errors.Is(err, repositories.ErrNotFound) {
			e.log.Warn("skipping ingredient: supplier material not found",
				"batch", batchID, "product", product.ID, "material", ing.materialID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load supplier material %s: %w", ing.materialID, err)
		}

		// quantity per base unit of product × base units of product needed
		perBase, err := units.Normalize(ing.quantity, ing.unit)
		if err != nil {
			return nil, fmt.Errorf("ingredient %s quantity: %w", ing.materialID, err)
		}
		baseUnit, err := units.Base(ing.unit)
		if err != nil {
			return nil, err
		}
		required := perBase * fillBase

		price, ok, err := e.materialPrice(ing, material)
		if err != nil {
			return nil, err
		}
		if !ok {
			e.log.Warn("skipping ingredient: supplier unit family differs from recipe unit family",
				"batch", batchID, "material", material.ID,
				"supplierUnit", material.Unit, "recipeUnit", ing.unit)
			continue
		}

		lines = append(lines, entities.RequirementItem{
			ItemType:     entities.ItemMaterial,
			ItemID:       string(material.ID),
			ItemName:     material.Name,
			SupplierID:   material.SupplierID,
			SupplierName: e.supplierName(ctx, material.SupplierID),
			Required:     required,
			Unit:         baseUnit,
			UnitPrice:    price.PerUnit,
			TaxPercent:   price.TaxPercent,
			TotalCost:    costing.Cost(required, price),
			PriceLocked:  price.Locked,
			ProductID:    product.ID,
			ProductName:  product.Name,
			VariantID:    variant.ID,
			VariantName:  variant.Name,
		})
	}
	return lines, nil
}

// materialPrice resolves the effective price for an ingredient: the
// formulation snapshot when present (already per base unit), otherwise the
// supplier record re-based to the ingredient's canonical unit. ok is false
// when the supplier record's unit family cannot be reconciled with the
// recipe's.
func (e *Exploder) materialPrice(ing ingredientLine, material *entities.SupplierMaterial) (costing.Price, bool, error) {
	if ing.snapshot != nil {
		return *ing.snapshot, true, nil
	}

	supplierFamily, err := units.FamilyOf(material.Unit)
	if err != nil {
		return costing.Price{}, false, fmt.Errorf("supplier material %s unit: %w", material.ID, err)
	}
	recipeFamily, err := units.FamilyOf(ing.unit)
	if err != nil {
		return costing.Price{}, false, fmt.Errorf("ingredient %s unit: %w", ing.materialID, err)
	}
	if supplierFamily != recipeFamily {
		return costing.Price{}, false, nil
	}

	factor, err := units.Normalize(1, material.Unit)
	if err != nil {
		return costing.Price{}, false, err
	}
	return costing.Rebase(costing.NewPrice(material.UnitPrice, material.TaxPercent), factor), true, nil
}

func (e *Exploder) explodePackaging(ctx context.Context, batchID entities.BatchID, product *entities.Product, variant *entities.ProductVariant, produced int64) ([]entities.RequirementItem, error) {
	if variant.PackagingSelectionID == "" {
		return nil, nil
	}

	packaging, err := e.catalog.GetSupplierPackaging(ctx, variant.PackagingSelectionID)
	if errors.Is(err, repositories.ErrNotFound) {
		e.log.Warn("skipping packaging: supplier packaging not found",
			"batch", batchID, "variant", variant.ID, "packaging", variant.PackagingSelectionID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load supplier packaging %s: %w", variant.PackagingSelectionID, err)
	}

	required := float64(produced)
	price := costing.NewPrice(packaging.UnitPrice, packaging.TaxPercent)
	return []entities.RequirementItem{{
		ItemType:     entities.ItemPackaging,
		ItemID:       string(packaging.ID),
		ItemName:     packaging.Name,
		SupplierID:   packaging.SupplierID,
		SupplierName: e.supplierName(ctx, packaging.SupplierID),
		Required:     required,
		Unit:         units.BaseCount,
		UnitPrice:    price.PerUnit,
		TaxPercent:   price.TaxPercent,
		TotalCost:    costing.Cost(required, price),
		ProductID:    product.ID,
		ProductName:  product.Name,
		VariantID:    variant.ID,
		VariantName:  variant.Name,
	}}, nil
}

// explodeLabels emits one independent line per present label slot
// (front/back)
func (e *Exploder) explodeLabels(ctx context.Context, batchID entities.BatchID, product *entities.Product, variant *entities.ProductVariant, produced int64) ([]entities.RequirementItem, error) {
	slots := []struct {
		name string
		id   entities.LabelID
	}{
		{"front", variant.FrontLabelSelectionID},
		{"back", variant.BackLabelSelectionID},
	}

	var lines []entities.RequirementItem
	for _, slot := range slots {
		if slot.id == "" {
			continue
		}

		label, err := e.catalog.GetSupplierLabel(ctx, slot.id)
		if errors.Is(err, repositories.ErrNotFound) {
			e.log.Warn("skipping label: supplier label not found",
				"batch", batchID, "variant", variant.ID, "slot", slot.name, "label", slot.id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load supplier label %s: %w", slot.id, err)
		}

		required := float64(produced)
		price := costing.NewPrice(label.UnitPrice, label.TaxPercent)
		lines = append(lines, entities.RequirementItem{
			ItemType:     entities.ItemLabel,
			ItemID:       string(label.ID),
			ItemName:     label.Name,
			SupplierID:   label.SupplierID,
			SupplierName: e.supplierName(ctx, label.SupplierID),
			Required:     required,
			Unit:         units.BaseCount,
			UnitPrice:    price.PerUnit,
			TaxPercent:   price.TaxPercent,
			TotalCost:    costing.Cost(required, price),
			ProductID:    product.ID,
			ProductName:  product.Name,
			VariantID:    variant.ID,
			VariantName:  variant.Name,
		})
	}
	return lines, nil
}

// supplierName resolves a supplier's display name, substituting
// entities.UnknownSupplierName when no supplier record exists
func (e *Exploder) supplierName(ctx context.Context, id entities.SupplierID) string {
	supplier, err := e.catalog.GetSupplier(ctx, id)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			e.log.Warn("supplier lookup failed", "supplier", id, "error", err)
		}
		return entities.UnknownSupplierName
	}
	return supplier.Name
}
