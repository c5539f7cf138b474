package storage

import (
	"context"
	"time"

	"breachwatch/pkg/domain"
)

// ItemStorage defines persistence operations for monitored items.
type ItemStorage interface {
	// StoreItem inserts a new monitored item and returns the stored row
	// including generated fields.
	StoreItem(ctx context.Context, item domain.MonitoredItem) (*domain.MonitoredItem, error)
	// UserItems returns all items owned by the user in insertion order.
	UserItems(ctx context.Context, userID domain.UserID) ([]domain.MonitoredItem, error)
	// ItemByID fetches an item by ID. Returns nil when not found.
	ItemByID(ctx context.Context, id domain.ItemID) (*domain.MonitoredItem, error)
	// StaleItems returns up to limit scannable items whose last_checked is
	// either null or older than the cutoff, oldest first. Used by the
	// background re-check worker.
	StaleItems(ctx context.Context, cutoff time.Time, limit uint) ([]domain.MonitoredItem, error)
	// SetItemScanState records the outcome of a successful external lookup:
	// last_checked and the resynchronized breach count.
	SetItemScanState(ctx context.Context, id domain.ItemID, checkedAt time.Time, breachCount int) error
}
