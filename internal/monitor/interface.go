package monitor

import (
	"context"

	"breachwatch/pkg/domain"
)

// CheckSummary aggregates the outcome of an on-demand re-check of a user's
// monitored items.
type CheckSummary struct {
	// ItemsChecked is the number of items the check iterated over, including
	// items whose kind has no lookup support and items whose lookup failed.
	ItemsChecked int `json:"itemsChecked"`
	// NewExposures is the number of breach events actually appended, after
	// deduplication.
	NewExposures int `json:"newExposures"`
}

//go:generate mockgen -package mockmonitor -source=interface.go -destination=mock/mockmonitor.go *
type Monitor interface {
	// AddItem validates, stores and immediately scans a new monitored item. The
	// returned item reflects the state after the first scan.
	AddItem(ctx context.Context, userID domain.UserID, kind domain.ItemKind, value string) (*domain.MonitoredItem, error)
	// Scan runs one external lookup for the item and appends any exposures not
	// yet on record, returning the number appended. Lookup failures are
	// swallowed: the item is left untouched and 0, nil is returned.
	Scan(ctx context.Context, item *domain.MonitoredItem) (int, error)
	// CheckAll re-scans every item the user monitors. Per-item failures never
	// abort the sweep.
	CheckAll(ctx context.Context, userID domain.UserID) (*CheckSummary, error)
	// UserItems returns the user's monitored items in insertion order.
	UserItems(ctx context.Context, userID domain.UserID) ([]domain.MonitoredItem, error)
	// UserEvents returns all breach events across the user's items, most recent
	// detection first.
	UserEvents(ctx context.Context, userID domain.UserID) ([]domain.BreachReport, error)
}
