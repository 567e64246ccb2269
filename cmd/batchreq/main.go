package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/batchkit/batchreq/pkg/interfaces/cli/commands"
)

func main() {
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		batchID   = flag.String("batch", "", "Batch id to analyze (optional for single-batch scenarios)")
		outputDir = flag.String("output", "", "Output directory for results (optional)")
		format    = flag.String("format", "text", "Output format: text, json")
		verbose   = flag.Bool("verbose", false, "Enable verbose output")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		ScenarioDir: *scenarioDir,
		BatchID:     *batchID,
		OutputDir:   *outputDir,
		Format:      *format,
		Verbose:     *verbose,
		Help:        *help,
	}

	cmd := commands.NewAnalyzeCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
