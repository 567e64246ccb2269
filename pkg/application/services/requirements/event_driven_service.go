package requirements

import (
	"context"
	"log/slog"

	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
	"github.com/batchkit/batchreq/pkg/infrastructure/events"
)

// EventDrivenAnalysisService wraps AnalysisService and publishes the
// outcome to an event store: one analysis.computed event per run plus one
// shortage.identified event per critical shortage line. Publish failures
// are logged, never propagated; the analysis itself is the contract.
type EventDrivenAnalysisService struct {
	service    *AnalysisService
	eventStore events.EventStore
	log        *slog.Logger
}

// NewEventDrivenAnalysisService creates the wrapper. A nil logger falls
// back to slog.Default().
func NewEventDrivenAnalysisService(eventStore events.EventStore, log *slog.Logger) *EventDrivenAnalysisService {
	if log == nil {
		log = slog.Default()
	}
	return &EventDrivenAnalysisService{
		service:    NewAnalysisService(log),
		eventStore: eventStore,
		log:        log,
	}
}

// Analyze runs the underlying analysis and publishes result events
func (s *EventDrivenAnalysisService) Analyze(
	ctx context.Context,
	batchID entities.BatchID,
	batchRepo repositories.BatchRepository,
	catalogRepo repositories.CatalogRepository,
	inventoryRepo repositories.InventoryRepository,
) (*dto.BatchRequirementsAnalysis, error) {
	analysis, err := s.service.Analyze(ctx, batchID, batchRepo, catalogRepo, inventoryRepo)
	if err != nil {
		return nil, err
	}

	stream := string(analysis.BatchID)
	if err := s.eventStore.AppendEvent(stream, events.NewAnalysisComputedEvent(analysis)); err != nil {
		s.log.Warn("failed to publish analysis computed event", "batch", analysis.BatchID, "error", err)
	}
	for _, line := range analysis.CriticalShortages {
		if err := s.eventStore.AppendEvent(stream, events.NewShortageIdentifiedEvent(analysis.BatchID, line)); err != nil {
			s.log.Warn("failed to publish shortage identified event",
				"batch", analysis.BatchID, "item", line.ItemID, "error", err)
		}
	}

	return analysis, nil
}
