package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/batchkit/batchreq/internal/config"
	"github.com/batchkit/batchreq/pkg/application/services/requirements"
	"github.com/batchkit/batchreq/pkg/infrastructure/repositories/sqlite"
	"github.com/batchkit/batchreq/pkg/interfaces/api"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if err := sqlite.Seed(db, log); err != nil {
		log.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(
		requirements.NewAnalysisService(log),
		sqlite.NewBatchRepository(db),
		sqlite.NewCatalogRepository(db),
		sqlite.NewInventoryRepository(db),
		log,
	)

	addr := ":" + cfg.Port
	log.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
