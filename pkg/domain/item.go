package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemID uniquely identifies a monitored item.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ItemID uuid.UUID

// String returns the canonical textual form of the item ID.
func (id ItemID) String() string { return uuid.UUID(id).String() }

// ItemKind tags a monitored item with the type of identifier it holds. Only
// certain kinds support an external breach lookup; other kinds are stored but
// never scanned.
type ItemKind string

const (
	// ItemKindEmail is an email address. Email items are checked against the
	// external breach source.
	ItemKindEmail ItemKind = "email"
)

// MonitoredItem is an identifier a user watches for appearance in data
// breaches. LastChecked and BreachCount are maintained exclusively by the
// ingestion engine: LastChecked is the time of the last successful external
// lookup (nil before the first one) and BreachCount mirrors the total number
// of breaches the external source currently reports for the value.
type MonitoredItem struct {
	ID     ItemID `json:"id"`
	UserID UserID `json:"userId"`

	Kind  ItemKind `json:"kind"`
	Value string   `json:"value"`

	LastChecked *time.Time `json:"lastChecked"`
	BreachCount int       `json:"breachCount"`

	CreatedAt time.Time `json:"createdAt"`
}

// ScannableKinds lists the kinds with external lookup support. Items of any
// other kind are held in the registry but skipped by scans.
func ScannableKinds() []ItemKind {
	return []ItemKind{ItemKindEmail}
}

// Scannable reports whether the item's kind supports an external breach
// lookup.
func (m *MonitoredItem) Scannable() bool {
	for _, kind := range ScannableKinds() {
		if m.Kind == kind {
			return true
		}
	}

	return false
}
