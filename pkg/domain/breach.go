package domain

import (
	"time"

	"github.com/google/uuid"
)

// BreachEventID uniquely identifies a recorded breach event.
type BreachEventID uuid.UUID

// String returns the canonical textual form of the event ID.
func (id BreachEventID) String() string { return uuid.UUID(id).String() }

// BreachEvent is an append-only record of a monitored item appearing in a
// named external breach disclosure. For a given item at most one event exists
// per distinct Source value; the storage layer enforces this with a unique
// constraint.
type BreachEvent struct {
	ID     BreachEventID `json:"id"`
	ItemID ItemID        `json:"itemId"`

	// Source names the breach as reported by the external source, e.g. "Adobe".
	Source string `json:"source"`
	// Details is a human-readable description composed at detection time.
	Details string `json:"details"`

	DetectedAt time.Time `json:"detectedAt"`
}

// BreachReport is a breach event joined with the kind and value of the
// monitored item it belongs to, as returned to API clients.
type BreachReport struct {
	BreachEvent

	ItemKind  ItemKind `json:"itemKind"`
	ItemValue string   `json:"itemValue"`
}
