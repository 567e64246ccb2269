// Package csv loads a scenario snapshot from a directory of CSV files into
// the in-memory repositories. It is the offline input path for the CLI, so
// an analysis can run against exported data without a database.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/infrastructure/repositories/memory"
)

// Loader reads scenario CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// Scenario holds the repositories populated from one scenario directory
type Scenario struct {
	Batches   *memory.BatchRepository
	Catalog   *memory.CatalogRepository
	Inventory *memory.InventoryRepository
}

// LoadScenario loads all scenario files from dir. formulations.csv is
// optional; every other file must exist, though data rows may be empty.
func (l *Loader) LoadScenario(dir string) (*Scenario, error) {
	scenario := &Scenario{
		Batches:   memory.NewBatchRepository(),
		Catalog:   memory.NewCatalogRepository(),
		Inventory: memory.NewInventoryRepository(),
	}

	if err := l.loadSuppliers(filepath.Join(dir, "suppliers.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadMaterials(filepath.Join(dir, "materials.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadPackaging(filepath.Join(dir, "packaging.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadLabels(filepath.Join(dir, "labels.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadRecipes(filepath.Join(dir, "recipes.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadFormulations(filepath.Join(dir, "formulations.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadProducts(filepath.Join(dir, "products.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadVariants(filepath.Join(dir, "variants.csv"), scenario.Catalog); err != nil {
		return nil, err
	}
	if err := l.loadInventory(filepath.Join(dir, "inventory.csv"), scenario.Inventory); err != nil {
		return nil, err
	}
	if err := l.loadBatches(filepath.Join(dir, "batches.csv"), scenario.Batches); err != nil {
		return nil, err
	}

	return scenario, nil
}

func (l *Loader) loadSuppliers(filename string, catalog *memory.CatalogRepository) error {
	records, err := readFile(filename, []string{"id", "name"})
	if err != nil {
		return err
	}
	for _, record := range records {
		catalog.AddSupplier(entities.Supplier{
			ID:   entities.SupplierID(record[0]),
			Name: record[1],
		})
	}
	return nil
}

func (l *Loader) loadMaterials(filename string, catalog *memory.CatalogRepository) error {
	records, err := readFile(filename, []string{"id", "supplier_id", "name", "unit", "unit_price", "tax_percent"})
	if err != nil {
		return err
	}
	for i, record := range records {
		price, tax, err := parsePriceTax(record[4], record[5])
		if err != nil {
			return fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}
		catalog.AddSupplierMaterial(entities.SupplierMaterial{
			ID:         entities.MaterialID(record[0]),
			SupplierID: entities.SupplierID(record[1]),
			Name:       record[2],
			Unit:       record[3],
			UnitPrice:  price,
			TaxPercent: tax,
		})
	}
	return nil
}

func (l *Loader) loadPackaging(filename string, catalog *memory.CatalogRepository) error {
	records, err := readFile(filename, []string{"id", "supplier_id", "name", "unit", "unit_price", "tax_percent"})
	if err != nil {
		return err
	}
	for i, record := range records {
		price, tax, err := parsePriceTax(record[4], record[5])
		if err != nil {
			return fmt.Errorf("packaging CSV row %d: %w", i+2, err)
		}
		catalog.AddSupplierPackaging(entities.SupplierPackaging{
			ID:         entities.PackagingID(record[0]),
			SupplierID: entities.SupplierID(record[1]),
			Name:       record[2],
			Unit:       record[3],
			UnitPrice:  price,
			TaxPercent: tax,
		})
	}
	return nil
}

func (l *Loader) loadLabels(filename string, catalog *memory.CatalogRepository) error {
	records, err := readFile(filename, []string{"id", "supplier_id", "name", "unit", "unit_price", "tax_percent"})
	if err != nil {
		return err
	}
	for i, record := range records {
		price, tax, err := parsePriceTax(record[4], record[5])
		if err != nil {
			return fmt.Errorf("labels CSV row %d: %w", i+2, err)
		}
		catalog.AddSupplierLabel(entities.SupplierLabel{
			ID:         entities.LabelID(record[0]),
			SupplierID: entities.SupplierID(record[1]),
			Name:       record[2],
			Unit:       record[3],
			UnitPrice:  price,
			TaxPercent: tax,
		})
	}
	return nil
}

// loadRecipes reads one ingredient line per row; recipes are assembled in
// row order and registered once all their lines are read
func (l *Loader) loadRecipes(filename string, catalog *memory.CatalogRepository) error {
	records, err := readFile(filename, []string{"recipe_id", "recipe_name", "material_id", "quantity", "unit"})
	if err != nil {
		return err
	}

	recipes := make(map[entities.RecipeID]*entities.Recipe)
	var order []entities.RecipeID
	for i, record := range records {
		id := entities.RecipeID(record[0])
		quantity, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("recipes CSV row %d: invalid quantity %q", i+2, record[3])
		}
		recipe, ok := recipes[id]
		if !ok {
			recipe = &entities.Recipe{ID: id, Name: record[1]}
			recipes[id] = recipe
			order = append(order, id)
		}
		recipe.Ingredients = append(recipe.Ingredients, entities.RecipeIngredient{
			SupplierMaterialID: entities.MaterialID(record[2]),
			Quantity:           quantity,
			Unit:               record[4],
		})
	}
	for _, id := range order {
		catalog.AddRecipe(*recipes[id])
	}
	return nil
}

// loadFormulations reads locked recipe variants. The file is optional;
// unit_price and tax_percent may be empty to fall back to supplier pricing.
func (l *Loader) loadFormulations(filename string, catalog *memory.CatalogRepository) error {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil
	}
	records, err := readFile(filename, []string{"variant_id", "variant_name", "material_id", "quantity", "unit", "unit_price", "tax_percent"})
	if err != nil {
		return err
	}

	variants := make(map[entities.RecipeID]*entities.RecipeVariant)
	var order []entities.RecipeID
	for i, record := range records {
		id := entities.RecipeID(record[0])
		quantity, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("formulations CSV row %d: invalid quantity %q", i+2, record[3])
		}
		ingredient := entities.RecipeVariantIngredient{
			SupplierMaterialID: entities.MaterialID(record[2]),
			Quantity:           quantity,
			Unit:               record[4],
		}
		if record[5] != "" {
			price, err := decimal.NewFromString(record[5])
			if err != nil {
				return fmt.Errorf("formulations CSV row %d: invalid unit_price %q", i+2, record[5])
			}
			ingredient.UnitPrice = &price
		}
		if record[6] != "" {
			tax, err := decimal.NewFromString(record[6])
			if err != nil {
				return fmt.Errorf("formulations CSV row %d: invalid tax_percent %q", i+2, record[6])
			}
			ingredient.TaxPercent = &tax
		}
		variant, ok := variants[id]
		if !ok {
			variant = &entities.RecipeVariant{ID: id, Name: record[1]}
			variants[id] = variant
			order = append(order, id)
		}
		variant.Ingredients = append(variant.Ingredients, ingredient)
	}
	for _, id := range order {
		catalog.AddRecipeVariant(*variants[id])
	}
	return nil
}

func (l *Loader) loadProducts(filename string, catalog *memory.CatalogRepository) error {
	records, err := readFile(filename, []string{"id", "name", "recipe_id", "is_recipe_variant"})
	if err != nil {
		return err
	}
	for i, record := range records {
		isVariant, err := strconv.ParseBool(record[3])
		if err != nil {
			return fmt.Errorf("products CSV row %d: invalid is_recipe_variant %q", i+2, record[3])
		}
		catalog.AddProduct(entities.Product{
			ID:              entities.ProductID(record[0]),
			Name:            record[1],
			RecipeID:        entities.RecipeID(record[2]),
			IsRecipeVariant: isVariant,
		})
	}
	return nil
}

func (l *Loader) loadVariants(filename string, catalog *memory.CatalogRepository) error {
	records, err := readFile(filename, []string{"id", "product_id", "name", "fill_quantity", "fill_unit", "packaging_id", "front_label_id", "back_label_id"})
	if err != nil {
		return err
	}
	for i, record := range records {
		fillQuantity, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("variants CSV row %d: invalid fill_quantity %q", i+2, record[3])
		}
		catalog.AddProductVariant(entities.ProductVariant{
			ID:                    entities.VariantID(record[0]),
			ProductID:             entities.ProductID(record[1]),
			Name:                  record[2],
			FillQuantity:          fillQuantity,
			FillUnit:              record[4],
			PackagingSelectionID:  entities.PackagingID(record[5]),
			FrontLabelSelectionID: entities.LabelID(record[6]),
			BackLabelSelectionID:  entities.LabelID(record[7]),
		})
	}
	return nil
}

func (l *Loader) loadInventory(filename string, inventory *memory.InventoryRepository) error {
	records, err := readFile(filename, []string{"item_type", "item_id", "supplier_id", "quantity", "unit"})
	if err != nil {
		return err
	}
	for i, record := range records {
		itemType, err := entities.ParseItemType(strings.ToLower(record[0]))
		if err != nil {
			return fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}
		quantity, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("inventory CSV row %d: invalid quantity %q", i+2, record[3])
		}
		inventory.SetOnHand(entities.InventoryRecord{
			ItemType:   itemType,
			ItemID:     record[1],
			SupplierID: entities.SupplierID(record[2]),
			Quantity:   quantity,
			Unit:       record[4],
		})
	}
	return nil
}

// loadBatches reads one variant spec per row; batch items are grouped by
// consecutive product ids in row order
func (l *Loader) loadBatches(filename string, batches *memory.BatchRepository) error {
	records, err := readFile(filename, []string{"batch_id", "batch_name", "product_id", "variant_id", "total_fill_quantity", "fill_unit"})
	if err != nil {
		return err
	}

	assembled := make(map[entities.BatchID]*entities.ProductionBatch)
	var order []entities.BatchID
	for i, record := range records {
		id := entities.BatchID(record[0])
		productID := entities.ProductID(record[2])
		quantity, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return fmt.Errorf("batches CSV row %d: invalid total_fill_quantity %q", i+2, record[4])
		}

		batch, ok := assembled[id]
		if !ok {
			batch = &entities.ProductionBatch{ID: id, Name: record[1]}
			assembled[id] = batch
			order = append(order, id)
		}

		spec := entities.BatchVariantSpec{
			VariantID:         entities.VariantID(record[3]),
			TotalFillQuantity: quantity,
			FillUnit:          record[5],
		}
		if n := len(batch.Items); n > 0 && batch.Items[n-1].ProductID == productID {
			batch.Items[n-1].Variants = append(batch.Items[n-1].Variants, spec)
		} else {
			batch.Items = append(batch.Items, entities.BatchItem{
				ProductID: productID,
				Variants:  []entities.BatchVariantSpec{spec},
			})
		}
	}
	for _, id := range order {
		batches.AddBatch(*assembled[id])
	}
	return nil
}

func readFile(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(filename), err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(filename), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s must have a header row", filepath.Base(filename))
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s header mismatch. Expected: %v, Got: %v",
			filepath.Base(filename), expectedHeader, records[0])
	}
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d",
				filepath.Base(filename), i+2, len(expectedHeader), len(record))
		}
	}
	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parsePriceTax(priceStr, taxStr string) (decimal.Decimal, decimal.Decimal, error) {
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("invalid unit_price %q", priceStr)
	}
	if taxStr == "" {
		return price, decimal.Zero, nil
	}
	tax, err := decimal.NewFromString(taxStr)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("invalid tax_percent %q", taxStr)
	}
	return price, tax, nil
}
