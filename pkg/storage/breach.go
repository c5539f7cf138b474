package storage

import (
	"context"

	"breachwatch/pkg/domain"
)

// BreachStorage defines persistence operations for the append-only breach
// event log.
type BreachStorage interface {
	// StoreBreachEvent appends a breach event unless one already exists for the
	// same (item, source) pair. It reports whether a row was actually inserted;
	// a unique-constraint conflict is absorbed and reported as false, which is
	// what keeps concurrent scans of the same item from double-recording an
	// exposure.
	StoreBreachEvent(ctx context.Context, event domain.BreachEvent) (bool, error)
	// BreachSourcesByItem returns the distinct source names already recorded
	// for the item.
	BreachSourcesByItem(ctx context.Context, itemID domain.ItemID) ([]string, error)
	// UserBreachReports returns all breach events across the user's items,
	// joined with item kind/value, most recent detection first.
	UserBreachReports(ctx context.Context, userID domain.UserID) ([]domain.BreachReport, error)
}
