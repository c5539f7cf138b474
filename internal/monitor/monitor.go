package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"breachwatch/pkg/breachsource"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/metrics"
	"breachwatch/pkg/serrors"
	"breachwatch/pkg/storage"

	"go.uber.org/zap"
)

// monitor is the concrete implementation of the Monitor interface. It
// coordinates the item registry in storage with the external breach source.
type monitor struct {
	storage storage.Storage
	source  breachsource.Client
}

// New creates a Monitor backed by the provided storage and breach source.
func New(storage storage.Storage, source breachsource.Client) Monitor {
	return &monitor{
		storage: storage,
		source:  source,
	}
}

// AddItem validates and stores a new monitored item, then runs its first scan
// synchronously so the caller gets back an item with last_checked and
// breach_count already populated (assuming the external source was reachable).
func (m *monitor) AddItem(ctx context.Context,
	userID domain.UserID,
	kind domain.ItemKind,
	value string) (*domain.MonitoredItem, error) {
	value, err := ValidateItem(kind, value)
	if err != nil {
		return nil, err
	}

	item, err := m.storage.StoreItem(ctx, domain.MonitoredItem{
		UserID: userID,
		Kind:   kind,
		Value:  value,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store item: %w", err)
	}

	if _, err := m.Scan(ctx, item); err != nil {
		return nil, fmt.Errorf("could not run initial scan: %w", err)
	}

	// re-read to pick up last_checked/breach_count written by the scan.
	stored, err := m.storage.ItemByID(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("could not reload item: %w", err)
	}

	if stored == nil {
		return item, nil
	}

	return stored, nil
}

// Scan looks the item's value up in the external breach source and appends one
// event per breach not yet on record for this item. Kinds without lookup
// support are skipped. A failed lookup is not an error from the caller's
// perspective: it is logged, counted, and the item's scan state is left
// untouched so the next sweep retries it.
func (m *monitor) Scan(ctx context.Context, item *domain.MonitoredItem) (int, error) {
	if !item.Scannable() {
		return 0, nil
	}

	records, err := m.source.Lookup(ctx, item.Value)
	if err != nil {
		outcome := "unavailable"
		if errors.Is(err, serrors.ErrRateLimited) {
			outcome = "rate_limited"
		}
		metrics.BreachLookups.WithLabelValues(outcome).Inc()

		logger.Warn(ctx, "breach lookup failed",
			zap.String("itemID", item.ID.String()),
			zap.Error(err))

		return 0, nil
	}
	metrics.BreachLookups.WithLabelValues("ok").Inc()

	existing, err := m.storage.BreachSourcesByItem(ctx, item.ID)
	if err != nil {
		return 0, fmt.Errorf("could not fetch recorded sources: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, source := range existing {
		seen[source] = struct{}{}
	}

	var appended int
	for _, record := range records {
		// the source may report the same breach twice in one response; record
		// it once.
		if _, ok := seen[record.Source]; ok {
			continue
		}
		seen[record.Source] = struct{}{}

		inserted, err := m.storage.StoreBreachEvent(ctx, domain.BreachEvent{
			ItemID:  item.ID,
			Source:  record.Source,
			Details: fmt.Sprintf("Compromised in %s breach", record.Title),
		})
		if err != nil {
			return appended, fmt.Errorf("could not store breach event: %w", err)
		}

		if inserted {
			appended++
			metrics.BreachEventsRecorded.Inc()
		}
	}

	// breach_count mirrors the source's current total for the value, so it is
	// resynced from the full response rather than incremented.
	if err := m.storage.SetItemScanState(ctx, item.ID, time.Now(), len(records)); err != nil {
		return appended, fmt.Errorf("could not update scan state: %w", err)
	}

	if appended > 0 {
		logger.Info(ctx, "new exposures recorded",
			zap.String("itemID", item.ID.String()),
			zap.Int("appended", appended))
	}

	return appended, nil
}

// CheckAll sweeps every item the user monitors. A storage failure while
// scanning one item is logged and the sweep moves on; the summary still counts
// the item as checked.
func (m *monitor) CheckAll(ctx context.Context, userID domain.UserID) (*CheckSummary, error) {
	items, err := m.storage.UserItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user items: %w", err)
	}

	summary := &CheckSummary{}
	for i := range items {
		appended, err := m.Scan(ctx, &items[i])
		if err != nil {
			logger.Error(ctx, "item scan failed",
				zap.String("itemID", items[i].ID.String()),
				zap.Error(err))
		}

		summary.ItemsChecked++
		summary.NewExposures += appended
	}

	return summary, nil
}

// UserItems returns the user's monitored items in insertion order.
func (m *monitor) UserItems(ctx context.Context, userID domain.UserID) ([]domain.MonitoredItem, error) {
	items, err := m.storage.UserItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user items: %w", err)
	}

	return items, nil
}

// UserEvents returns all breach events across the user's items, joined with
// item kind and value, most recent detection first.
func (m *monitor) UserEvents(ctx context.Context, userID domain.UserID) ([]domain.BreachReport, error) {
	reports, err := m.storage.UserBreachReports(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch breach reports: %w", err)
	}

	return reports, nil
}
