// Package api exposes batch requirements analyses over HTTP as JSON.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/batchkit/batchreq/pkg/application/services/requirements"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
)

// Server wires the analysis service and repositories into HTTP handlers
type Server struct {
	service       *requirements.AnalysisService
	batchRepo     repositories.BatchRepository
	catalogRepo   repositories.CatalogRepository
	inventoryRepo repositories.InventoryRepository
	log           *slog.Logger
}

// NewServer creates an API server over the given repositories
func NewServer(
	service *requirements.AnalysisService,
	batchRepo repositories.BatchRepository,
	catalogRepo repositories.CatalogRepository,
	inventoryRepo repositories.InventoryRepository,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		service:       service,
		batchRepo:     batchRepo,
		catalogRepo:   catalogRepo,
		inventoryRepo: inventoryRepo,
		log:           log,
	}
}

// Router builds the route table
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/batches", s.handleBatchList)
	r.Get("/api/batches/{batchID}/requirements", s.handleRequirements)
	r.Get("/api/batches/{batchID}/requirements/suppliers/{supplierID}/shortages", s.handleSupplierShortages)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type batchSummary struct {
	ID   entities.BatchID `json:"id"`
	Name string           `json:"name"`
}

func (s *Server) handleBatchList(w http.ResponseWriter, r *http.Request) {
	batches, err := s.batchRepo.ListBatches(r.Context())
	if err != nil {
		s.serverError(w, "list batches", err)
		return
	}
	summaries := make([]batchSummary, 0, len(batches))
	for _, batch := range batches {
		summaries = append(summaries, batchSummary{ID: batch.ID, Name: batch.Name})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	batchID := entities.BatchID(chi.URLParam(r, "batchID"))

	analysis, err := s.service.Analyze(r.Context(), batchID, s.batchRepo, s.catalogRepo, s.inventoryRepo)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, "batch not found")
		return
	}
	if err != nil {
		s.serverError(w, "analyze batch", err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

type supplierShortagesResponse struct {
	BatchID    entities.BatchID           `json:"batchId"`
	SupplierID entities.SupplierID        `json:"supplierId"`
	Shortages  []entities.RequirementItem `json:"shortages"`
}

func (s *Server) handleSupplierShortages(w http.ResponseWriter, r *http.Request) {
	batchID := entities.BatchID(chi.URLParam(r, "batchID"))
	supplierID := entities.SupplierID(chi.URLParam(r, "supplierID"))

	analysis, err := s.service.Analyze(r.Context(), batchID, s.batchRepo, s.catalogRepo, s.inventoryRepo)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, "batch not found")
		return
	}
	if err != nil {
		s.serverError(w, "analyze batch", err)
		return
	}

	shortages := requirements.SupplierShortages(analysis, supplierID)
	writeJSON(w, http.StatusOK, supplierShortagesResponse{
		BatchID:    batchID,
		SupplierID: supplierID,
		Shortages:  shortages,
	})
}

func (s *Server) serverError(w http.ResponseWriter, op string, err error) {
	s.log.Error("request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
