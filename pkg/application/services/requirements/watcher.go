package requirements

import (
	"context"
	"log/slog"
	"sync"

	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
	"github.com/batchkit/batchreq/pkg/infrastructure/events"
)

// AnalysisObserver receives freshly recomputed analyses
type AnalysisObserver func(analysis *dto.BatchRequirementsAnalysis)

// AnalysisWatcher recomputes watched batches whenever a change event
// invalidates their last analysis, and delivers results to an observer.
// The engine stays a pure function of its inputs; this is the external
// change-notification mechanism layered on top.
//
// Each watched batch carries a version counter bumped on every trigger; a
// recomputation that finishes after a newer trigger arrived is discarded
// rather than delivered, so the observer never sees results for inputs that
// have already changed again.
type AnalysisWatcher struct {
	service   *AnalysisService
	batches   repositories.BatchRepository
	catalog   repositories.CatalogRepository
	inventory repositories.InventoryRepository
	observer  AnalysisObserver
	log       *slog.Logger

	mu      sync.Mutex
	watched map[entities.BatchID]uint64
}

// NewAnalysisWatcher creates a watcher; register it on an event store with
// store.Subscribe(events.ChangeEventTypes, watcher)
func NewAnalysisWatcher(
	batchRepo repositories.BatchRepository,
	catalogRepo repositories.CatalogRepository,
	inventoryRepo repositories.InventoryRepository,
	observer AnalysisObserver,
	log *slog.Logger,
) *AnalysisWatcher {
	if log == nil {
		log = slog.Default()
	}
	return &AnalysisWatcher{
		service:   NewAnalysisService(log),
		batches:   batchRepo,
		catalog:   catalogRepo,
		inventory: inventoryRepo,
		observer:  observer,
		log:       log,
		watched:   make(map[entities.BatchID]uint64),
	}
}

var _ events.EventHandler = (*AnalysisWatcher)(nil)

// Watch starts recomputing the given batch on relevant changes
func (w *AnalysisWatcher) Watch(batchID entities.BatchID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.watched[batchID]; !ok {
		w.watched[batchID] = 0
	}
}

// Unwatch stops tracking the given batch
func (w *AnalysisWatcher) Unwatch(batchID entities.BatchID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.watched, batchID)
}

// CanHandle reports interest in analysis-invalidating change events
func (w *AnalysisWatcher) CanHandle(eventType string) bool {
	for _, t := range events.ChangeEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// Handle reacts to one change event. Batch events target one batch;
// inventory, recipe and price events can affect any watched batch, so all
// of them are recomputed.
func (w *AnalysisWatcher) Handle(event events.Event) error {
	switch event.Type() {
	case events.BatchDeletedEvent:
		w.Unwatch(entities.BatchID(event.StreamID()))
	case events.BatchUpdatedEvent:
		w.recompute(entities.BatchID(event.StreamID()))
	default:
		for _, batchID := range w.watchedBatches() {
			w.recompute(batchID)
		}
	}
	return nil
}

func (w *AnalysisWatcher) watchedBatches() []entities.BatchID {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := make([]entities.BatchID, 0, len(w.watched))
	for id := range w.watched {
		ids = append(ids, id)
	}
	return ids
}

func (w *AnalysisWatcher) recompute(batchID entities.BatchID) {
	w.mu.Lock()
	version, ok := w.watched[batchID]
	if !ok {
		w.mu.Unlock()
		return
	}
	version++
	w.watched[batchID] = version
	w.mu.Unlock()

	analysis, err := w.service.Analyze(context.Background(), batchID, w.batches, w.catalog, w.inventory)
	if err != nil {
		w.log.Warn("recompute failed", "batch", batchID, "error", err)
		return
	}

	w.mu.Lock()
	current, ok := w.watched[batchID]
	w.mu.Unlock()
	if !ok || current != version {
		// superseded while in flight; a fresher recompute will deliver
		return
	}
	w.observer(analysis)
}
