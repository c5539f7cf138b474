// Package breachsource defines the abstraction for external
// breach-intelligence lookups used by the ingestion engine.
package breachsource

import "context"

// Breach is a single breach record reported by the external source for a
// looked-up value.
type Breach struct {
	// Source is the name of the breach, e.g. "Adobe". It is the deduplication
	// key for recorded exposures.
	Source string
	// Title is the human-readable title of the breach.
	Title string
}

// Client is the abstraction for breach-intelligence providers. Implementations
// look up a value (typically an email address) and return the breaches it
// currently appears in.
//
//go:generate mockgen -package mockbreachsource -source=interface.go -destination=mock/mockbreachsource.go *
type Client interface {
	// Lookup returns the breaches the value appears in. An empty slice means
	// the source knows the value and reports no breaches. Errors carry
	// serrors.ErrUnavailable or serrors.ErrRateLimited kinds; callers treat
	// every error as "no data".
	Lookup(ctx context.Context, value string) ([]Breach, error)
}
