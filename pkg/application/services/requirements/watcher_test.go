package requirements

import (
	"context"
	"testing"

	"github.com/batchkit/batchreq/pkg/application/dto"
	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/infrastructure/events"
	testhelpers "github.com/batchkit/batchreq/pkg/infrastructure/testing"
)

func TestAnalysisWatcher_RecomputesOnBatchUpdate(t *testing.T) {
	batchRepo, catalogRepo, inventoryRepo := testhelpers.BuildSoapWorksScenario()
	store := events.NewInMemoryEventStore()

	var delivered []*dto.BatchRequirementsAnalysis
	watcher := NewAnalysisWatcher(batchRepo, catalogRepo, inventoryRepo,
		func(analysis *dto.BatchRequirementsAnalysis) {
			delivered = append(delivered, analysis)
		}, nil)
	if err := store.Subscribe(events.ChangeEventTypes, watcher); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	watcher.Watch("BATCH-1")

	batch, err := batchRepo.GetBatch(context.Background(), "BATCH-1")
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if err := store.AppendEvent("BATCH-1", events.NewBatchUpdatedEvent(*batch)); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}

	// delivery is synchronous with the append
	if len(delivered) != 1 {
		t.Fatalf("expected 1 delivered analysis, got %d", len(delivered))
	}
	if delivered[0].BatchID != "BATCH-1" {
		t.Errorf("expected BATCH-1, got %s", delivered[0].BatchID)
	}
}

func TestAnalysisWatcher_InventoryChangeTriggersWatchedBatches(t *testing.T) {
	batchRepo, catalogRepo, inventoryRepo := testhelpers.BuildSoapWorksScenario()
	store := events.NewInMemoryEventStore()

	deliveries := 0
	watcher := NewAnalysisWatcher(batchRepo, catalogRepo, inventoryRepo,
		func(*dto.BatchRequirementsAnalysis) { deliveries++ }, nil)
	if err := store.Subscribe(events.ChangeEventTypes, watcher); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	// nothing watched yet: no delivery
	record := entities.InventoryRecord{ItemType: entities.ItemMaterial, ItemID: "MAT-OLIVE", SupplierID: "SUP-OILS", Quantity: 80}
	if err := store.AppendEvent("MAT-OLIVE", events.NewInventoryAdjustedEvent(record)); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}
	if deliveries != 0 {
		t.Fatalf("expected no deliveries before Watch, got %d", deliveries)
	}

	watcher.Watch("BATCH-1")
	inventoryRepo.SetOnHand(record)
	if err := store.AppendEvent("MAT-OLIVE", events.NewInventoryAdjustedEvent(record)); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}
	if deliveries != 1 {
		t.Errorf("expected 1 delivery after inventory change, got %d", deliveries)
	}
}

func TestAnalysisWatcher_DeletedBatchIsDropped(t *testing.T) {
	batchRepo, catalogRepo, inventoryRepo := testhelpers.BuildSoapWorksScenario()
	store := events.NewInMemoryEventStore()

	deliveries := 0
	watcher := NewAnalysisWatcher(batchRepo, catalogRepo, inventoryRepo,
		func(*dto.BatchRequirementsAnalysis) { deliveries++ }, nil)
	if err := store.Subscribe(events.ChangeEventTypes, watcher); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	watcher.Watch("BATCH-1")

	batchRepo.RemoveBatch("BATCH-1")
	if err := store.AppendEvent("BATCH-1", events.NewBatchDeletedEvent("BATCH-1")); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}

	// later changes must not resurrect the deleted batch
	record := entities.InventoryRecord{ItemType: entities.ItemMaterial, ItemID: "MAT-OLIVE", SupplierID: "SUP-OILS", Quantity: 80}
	if err := store.AppendEvent("MAT-OLIVE", events.NewInventoryAdjustedEvent(record)); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}

	if deliveries != 0 {
		t.Errorf("expected no deliveries for deleted batch, got %d", deliveries)
	}
}

func TestEventDrivenAnalysisService_PublishesResults(t *testing.T) {
	ctx := context.Background()
	batchRepo, catalogRepo, inventoryRepo := testhelpers.BuildSoapWorksScenario()
	store := events.NewInMemoryEventStore()
	service := NewEventDrivenAnalysisService(store, nil)

	analysis, err := service.Analyze(ctx, "BATCH-1", batchRepo, catalogRepo, inventoryRepo)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	published, err := store.ReadEvents("BATCH-1", 1)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}

	computed := 0
	shortages := 0
	for _, event := range published {
		switch event.Type() {
		case events.AnalysisComputedEvent:
			computed++
		case events.ShortageIdentifiedEvent:
			shortages++
		}
	}
	if computed != 1 {
		t.Errorf("expected 1 analysis.computed event, got %d", computed)
	}
	if shortages != len(analysis.CriticalShortages) {
		t.Errorf("expected %d shortage.identified events, got %d", len(analysis.CriticalShortages), shortages)
	}
}
