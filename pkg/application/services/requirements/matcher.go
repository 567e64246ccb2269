package requirements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/batchkit/batchreq/pkg/domain/entities"
	"github.com/batchkit/batchreq/pkg/domain/repositories"
	"github.com/batchkit/batchreq/pkg/domain/units"
)

// Matcher annotates exploded requirement lines with on-hand availability.
// An item with no inventory record at all is marked untracked, which is a
// different state from tracked-with-zero-stock.
type Matcher struct {
	inventory repositories.InventoryRepository
	log       *slog.Logger
}

// NewMatcher creates a Matcher over the given inventory snapshot
func NewMatcher(inventory repositories.InventoryRepository, log *slog.Logger) *Matcher {
	if log == nil {
		log = slog.Default()
	}
	return &Matcher{inventory: inventory, log: log}
}

// Match looks up on-hand quantity by (itemType, itemID, supplierID) and sets
// Available, Shortage, Tracked and Severity on a copy of line
func (m *Matcher) Match(ctx context.Context, line entities.RequirementItem) (entities.RequirementItem, error) {
	record, err := m.inventory.GetOnHand(ctx, line.ItemType, line.ItemID, line.SupplierID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		line.Available = 0
		line.Tracked = false
	case err != nil:
		return line, fmt.Errorf("inventory lookup for %s %s: %w", line.ItemType, line.ItemID, err)
	default:
		line.Tracked = true
		available := record.Quantity
		if record.Unit != "" {
			available, err = units.Normalize(record.Quantity, record.Unit)
			if err != nil {
				return line, fmt.Errorf("inventory record for %s %s: %w", line.ItemType, line.ItemID, err)
			}
		}
		line.Available = available
	}

	line.Shortage = math.Max(line.Required-line.Available, 0)
	line.Severity = severity(line)
	return line, nil
}

// severity bands a line's shortage for presentation. The banding never
// feeds back into cost totals: 0 is available, any shortage on an untracked
// item is a warning, and tracked shortages band by shortage/required.
func severity(line entities.RequirementItem) entities.ShortageSeverity {
	if line.Shortage == 0 {
		return entities.SeverityAvailable
	}
	if !line.Tracked {
		return entities.SeverityWarning
	}

	ratio := line.Shortage / line.Required
	switch {
	case ratio >= 0.5:
		return entities.SeverityHigh
	case ratio >= 0.2:
		return entities.SeverityMedium
	default:
		return entities.SeverityLow
	}
}
