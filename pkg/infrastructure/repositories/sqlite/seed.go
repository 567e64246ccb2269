package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Seed populates an empty database with a small demo scenario so the server
// is usable out of the box. It is a no-op when any batch already exists.
func Seed(db *sql.DB, log *slog.Logger) error {
	var exists bool
	if err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM batches LIMIT 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check seed existence: %w", err)
	}
	if exists {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	supOils := uuid.NewString()
	supPack := uuid.NewString()
	if err := execAll(tx,
		stmt(`INSERT INTO suppliers (id, name) VALUES (?, ?)`, supOils, "Aegean Oils"),
		stmt(`INSERT INTO suppliers (id, name) VALUES (?, ?)`, supPack, "Northpack"),
	); err != nil {
		return err
	}

	matOlive := uuid.NewString()
	matLye := uuid.NewString()
	matLavender := uuid.NewString()
	pkgJar := uuid.NewString()
	lblFront := uuid.NewString()
	lblBack := uuid.NewString()
	if err := execAll(tx,
		stmt(`INSERT INTO supplier_materials (id, supplier_id, name, unit, unit_price, tax_percent) VALUES (?, ?, ?, ?, ?, ?)`,
			matOlive, supOils, "Olive Oil", "kg", "50", "5"),
		stmt(`INSERT INTO supplier_materials (id, supplier_id, name, unit, unit_price, tax_percent) VALUES (?, ?, ?, ?, ?, ?)`,
			matLye, supOils, "Lye", "g", "0.02", "0"),
		stmt(`INSERT INTO supplier_materials (id, supplier_id, name, unit, unit_price, tax_percent) VALUES (?, ?, ?, ?, ?, ?)`,
			matLavender, supOils, "Lavender Essential Oil", "kg", "200", "5"),
		stmt(`INSERT INTO supplier_packaging (id, supplier_id, name, unit, unit_price, tax_percent) VALUES (?, ?, ?, ?, ?, ?)`,
			pkgJar, supPack, "250ml Amber Jar", "pcs", "1.2", "0"),
		stmt(`INSERT INTO supplier_labels (id, supplier_id, name, unit, unit_price, tax_percent) VALUES (?, ?, ?, ?, ?, ?)`,
			lblFront, supPack, "Front Label", "pcs", "0.1", "0"),
		stmt(`INSERT INTO supplier_labels (id, supplier_id, name, unit, unit_price, tax_percent) VALUES (?, ?, ?, ?, ?, ?)`,
			lblBack, supPack, "Back Label", "pcs", "0.05", "0"),
	); err != nil {
		return err
	}

	recipeSoap := uuid.NewString()
	if err := execAll(tx,
		stmt(`INSERT INTO recipes (id, name) VALUES (?, ?)`, recipeSoap, "Olive Soap Base"),
		stmt(`INSERT INTO recipe_ingredients (recipe_id, position, supplier_material_id, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			recipeSoap, 0, matOlive, 0.75, "kg"),
		stmt(`INSERT INTO recipe_ingredients (recipe_id, position, supplier_material_id, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			recipeSoap, 1, matLye, 95.0, "g"),
		stmt(`INSERT INTO recipe_ingredients (recipe_id, position, supplier_material_id, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			recipeSoap, 2, matLavender, 0.01, "kg"),
	); err != nil {
		return err
	}

	variantCream := uuid.NewString()
	if err := execAll(tx,
		stmt(`INSERT INTO recipe_variants (id, name) VALUES (?, ?)`, variantCream, "Olive Cream v2"),
		stmt(`INSERT INTO recipe_variant_ingredients (recipe_variant_id, position, supplier_material_id, quantity, unit, unit_price, tax_percent) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			variantCream, 0, matOlive, 0.5, "kg", "45", "5"),
	); err != nil {
		return err
	}

	prodSoap := uuid.NewString()
	prodCream := uuid.NewString()
	varSoap250 := uuid.NewString()
	varCream100 := uuid.NewString()
	if err := execAll(tx,
		stmt(`INSERT INTO products (id, name, recipe_id, is_recipe_variant) VALUES (?, ?, ?, ?)`,
			prodSoap, "Lavender Olive Soap", recipeSoap, 0),
		stmt(`INSERT INTO products (id, name, recipe_id, is_recipe_variant) VALUES (?, ?, ?, ?)`,
			prodCream, "Olive Hand Cream", variantCream, 1),
		stmt(`INSERT INTO product_variants (id, product_id, name, fill_quantity, fill_unit, packaging_selection_id, front_label_selection_id, back_label_selection_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			varSoap250, prodSoap, "250g Jar", 250.0, "g", pkgJar, lblFront, lblBack),
		stmt(`INSERT INTO product_variants (id, product_id, name, fill_quantity, fill_unit, packaging_selection_id, front_label_selection_id, back_label_selection_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			varCream100, prodCream, "100g Jar", 100.0, "g", pkgJar, lblFront, ""),
	); err != nil {
		return err
	}

	if err := execAll(tx,
		stmt(`INSERT INTO inventory (item_type, item_id, supplier_id, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			"material", matOlive, supOils, 50.0, "kg"),
		stmt(`INSERT INTO inventory (item_type, item_id, supplier_id, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			"material", matLye, supOils, 0.0, "kg"),
		stmt(`INSERT INTO inventory (item_type, item_id, supplier_id, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			"packaging", pkgJar, supPack, 100.0, "pcs"),
		stmt(`INSERT INTO inventory (item_type, item_id, supplier_id, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			"label", lblFront, supPack, 1000.0, "pcs"),
	); err != nil {
		return err
	}

	batchID := uuid.NewString()
	if err := execAll(tx,
		stmt(`INSERT INTO batches (id, name) VALUES (?, ?)`, batchID, "Spring Run"),
		stmt(`INSERT INTO batch_items (batch_id, position, product_id) VALUES (?, ?, ?)`, batchID, 0, prodSoap),
		stmt(`INSERT INTO batch_item_variants (batch_id, item_position, position, variant_id, total_fill_quantity, fill_unit) VALUES (?, ?, ?, ?, ?, ?)`,
			batchID, 0, 0, varSoap250, 100.0, "kg"),
		stmt(`INSERT INTO batch_items (batch_id, position, product_id) VALUES (?, ?, ?)`, batchID, 1, prodCream),
		stmt(`INSERT INTO batch_item_variants (batch_id, item_position, position, variant_id, total_fill_quantity, fill_unit) VALUES (?, ?, ?, ?, ?, ?)`,
			batchID, 1, 0, varCream100, 10.0, "kg"),
	); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	log.Info("seeded demo scenario", "batch_id", batchID)
	return nil
}

type seedStmt struct {
	query string
	args  []interface{}
}

func stmt(query string, args ...interface{}) seedStmt {
	return seedStmt{query: query, args: args}
}

func execAll(tx *sql.Tx, stmts ...seedStmt) error {
	for _, s := range stmts {
		if _, err := tx.Exec(s.query, s.args...); err != nil {
			return fmt.Errorf("seed insert: %w", err)
		}
	}
	return nil
}
