package entities

import "github.com/shopspring/decimal"

// SupplierMaterial is a raw-material pricing record. UnitPrice is per Unit
// (e.g. per kg); TaxPercent may be zero when the supplier record carries no
// tax rate.
type SupplierMaterial struct {
	ID         MaterialID      `json:"id"`
	SupplierID SupplierID      `json:"supplierId"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
}

// SupplierPackaging is a packaging pricing record, priced per piece
type SupplierPackaging struct {
	ID         PackagingID     `json:"id"`
	SupplierID SupplierID      `json:"supplierId"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
}

// SupplierLabel is a label pricing record, priced per piece
type SupplierLabel struct {
	ID         LabelID         `json:"id"`
	SupplierID SupplierID      `json:"supplierId"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
}
