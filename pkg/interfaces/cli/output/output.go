// Package output renders a batch requirements analysis for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders the analysis in the configured format
func Generate(analysis *dto.BatchRequirementsAnalysis, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(analysis, config)
	case "json":
		return generateJSONOutput(analysis, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateTextOutput(analysis *dto.BatchRequirementsAnalysis, config Config) error {
	fmt.Printf("📊 Batch Requirements: %s (%s)\n", analysis.BatchName, analysis.BatchID)
	fmt.Printf("==========================================\n\n")

	fmt.Printf("Material Cost:   %s\n", analysis.TotalMaterialCost)
	fmt.Printf("Packaging Cost:  %s\n", analysis.TotalPackagingCost)
	fmt.Printf("Label Cost:      %s\n", analysis.TotalLabelCost)
	fmt.Printf("Total Cost:      %s\n\n", analysis.TotalCost)

	printCategory("🧪 Materials", analysis.Materials)
	printCategory("📦 Packaging", analysis.Packaging)
	printCategory("🏷️  Labels", analysis.Labels)

	if len(analysis.BySupplier) > 0 {
		fmt.Printf("🏭 By Supplier:\n")
		fmt.Printf("%-15s %-25s %-12s\n", "Supplier", "Name", "Total Cost")
		fmt.Printf("%-15s %-25s %-12s\n", "---------------", "-------------------------", "------------")
		for _, supplier := range analysis.BySupplier {
			fmt.Printf("%-15s %-25s %-12s\n", supplier.SupplierID, supplier.SupplierName, supplier.TotalCost)
		}
		fmt.Println()
	}

	if len(analysis.ByProduct) > 0 {
		fmt.Printf("🧴 By Product:\n")
		fmt.Printf("%-15s %-25s %-12s %-8s\n", "Product", "Name", "Total Cost", "% Total")
		fmt.Printf("%-15s %-25s %-12s %-8s\n", "---------------", "-------------------------", "------------", "--------")
		for _, product := range analysis.ByProduct {
			fmt.Printf("%-15s %-25s %-12s %-8.1f\n",
				product.ProductID, product.ProductName, product.TotalCost, product.PercentOfTotal)
		}
		fmt.Println()
	}

	if len(analysis.CriticalShortages) > 0 {
		fmt.Printf("⚠️  Critical Shortages:\n")
		fmt.Printf("%-10s %-25s %-12s %-12s %-10s\n", "Type", "Item", "Required", "Available", "Severity")
		fmt.Printf("%-10s %-25s %-12s %-12s %-10s\n", "----------", "-------------------------", "------------", "------------", "----------")
		for _, line := range analysis.CriticalShortages {
			fmt.Printf("%-10s %-25s %-12.3f %-12.3f %-10s\n",
				line.ItemType, line.ItemName, line.Required, line.Available, line.Severity)
		}
		fmt.Println()
	}

	if len(analysis.ItemsWithoutInventory) > 0 {
		fmt.Printf("❓ No Inventory Records:\n")
		for _, line := range analysis.ItemsWithoutInventory {
			fmt.Printf("  %s %s (%s)\n", line.ItemType, line.ItemName, line.SupplierName)
		}
		fmt.Println()
	}

	return nil
}

func printCategory(title string, lines []entities.RequirementItem) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	fmt.Printf("%-25s %-12s %-6s %-12s %-12s\n", "Item", "Required", "Unit", "Shortage", "Cost")
	fmt.Printf("%-25s %-12s %-6s %-12s %-12s\n", "-------------------------", "------------", "------", "------------", "------------")
	for _, line := range lines {
		fmt.Printf("%-25s %-12.3f %-6s %-12.3f %-12s\n",
			line.ItemName, line.Required, line.Unit, line.Shortage, line.TotalCost)
	}
	fmt.Println()
}

func generateJSONOutput(analysis *dto.BatchRequirementsAnalysis, config Config) error {
	jsonData, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "batch_requirements.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}
	return nil
}
