// Package commands implements the CLI entry points.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/batchkit/batchreq/pkg/application/services/requirements"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/infrastructure/repositories/csv"
	"github.com/batchkit/batchreq/pkg/interfaces/cli/output"
)

// Config holds configuration for the analyze command
type Config struct {
	ScenarioDir string
	BatchID     string
	OutputDir   string
	Format      string
	Verbose     bool
	Help        bool
}

// AnalyzeCommand loads a CSV scenario and runs the requirements analysis
type AnalyzeCommand struct {
	config Config
}

// NewAnalyzeCommand creates an analyze command with the given configuration
func NewAnalyzeCommand(config Config) *AnalyzeCommand {
	return &AnalyzeCommand{config: config}
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loading scenario from %s...\n", c.config.ScenarioDir)
	}

	scenario, err := csv.NewLoader().LoadScenario(c.config.ScenarioDir)
	if err != nil {
		return fmt.Errorf("error loading scenario: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	service := requirements.NewAnalysisService(log)

	batchID := entities.BatchID(c.config.BatchID)
	if batchID == "" {
		batches, err := scenario.Batches.ListBatches(ctx)
		if err != nil {
			return fmt.Errorf("error listing batches: %w", err)
		}
		if len(batches) != 1 {
			return fmt.Errorf("scenario has %d batches; pass -batch to pick one", len(batches))
		}
		batchID = batches[0].ID
	}

	if c.config.Verbose {
		fmt.Printf("🔄 Analyzing batch %s...\n\n", batchID)
	}

	analysis, err := service.Analyze(ctx, batchID, scenario.Batches, scenario.Catalog, scenario.Inventory)
	if err != nil {
		return fmt.Errorf("error analyzing batch %s: %w", batchID, err)
	}

	return output.Generate(analysis, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

func (c *AnalyzeCommand) validateInputs() error {
	if c.config.ScenarioDir == "" {
		return fmt.Errorf("scenario directory is required")
	}
	info, err := os.Stat(c.config.ScenarioDir)
	if err != nil {
		return fmt.Errorf("scenario directory %s: %w", c.config.ScenarioDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scenario path %s is not a directory", c.config.ScenarioDir)
	}
	if c.config.Format != "text" && c.config.Format != "json" {
		return fmt.Errorf("unsupported format %q (expected text or json)", c.config.Format)
	}
	return nil
}

func (c *AnalyzeCommand) showHelp() {
	fmt.Println(`batchreq - batch requirements analysis

Usage:
  batchreq -scenario DIR [-batch ID] [-format text|json] [-output DIR] [-v]

Flags:
  -scenario   directory with the scenario CSV files (required)
  -batch      batch id to analyze (optional when the scenario has one batch)
  -format     output format: text or json (default text)
  -output     directory for JSON output files (default stdout)
  -v          verbose progress output
  -h          show this help

Scenario files:
  suppliers.csv, materials.csv, packaging.csv, labels.csv, recipes.csv,
  products.csv, variants.csv, inventory.csv, batches.csv, and optionally
  formulations.csv for locked recipe variants.`)
}
