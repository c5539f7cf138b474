package postgres

import (
	"context"
	"fmt"
	"time"

	"breachwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const itemsTable = "monitored_items"

// StoreItem inserts a new monitored item and returns the stored row.
func (p *PgSQL) StoreItem(ctx context.Context, item domain.MonitoredItem) (*domain.MonitoredItem, error) {
	var row PgItem
	row.FromDomain(item)

	var stored PgItem
	found, err := p.Builder.Insert(itemsTable).
		Rows(row).
		Returning(&PgItem{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store item into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no row returned after item insert")
	}

	return stored.ToDomain(), nil
}

// UserItems returns the user's items in insertion order.
func (p *PgSQL) UserItems(ctx context.Context, userID domain.UserID) ([]domain.MonitoredItem, error) {
	var rows []PgItem
	if err := p.Builder.From(itemsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user items from pg: %w", err)
	}

	return pgItemsToDomain(rows), nil
}

// ItemByID fetches an item by ID, returning nil when absent.
func (p *PgSQL) ItemByID(ctx context.Context, id domain.ItemID) (*domain.MonitoredItem, error) {
	var row PgItem
	found, err := p.Builder.From(itemsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch item by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StaleItems returns up to limit scannable items never checked or last
// checked before the cutoff, oldest first. Null last_checked sorts first so
// brand-new items are picked up ahead of merely stale ones. Unscannable kinds
// keep last_checked null forever and must not occupy the batch.
func (p *PgSQL) StaleItems(ctx context.Context, cutoff time.Time, limit uint) ([]domain.MonitoredItem, error) {
	kinds := make([]string, 0, len(domain.ScannableKinds()))
	for _, kind := range domain.ScannableKinds() {
		kinds = append(kinds, string(kind))
	}

	var rows []PgItem
	if err := p.Builder.From(itemsTable).
		Where(
			goqu.I("kind").In(kinds),
			goqu.Or(
				goqu.I("last_checked").IsNull(),
				goqu.I("last_checked").Lt(cutoff),
			),
		).
		Order(goqu.I("last_checked").Asc().NullsFirst()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch stale items from pg: %w", err)
	}

	return pgItemsToDomain(rows), nil
}

// SetItemScanState records the outcome of a successful lookup on the item.
func (p *PgSQL) SetItemScanState(ctx context.Context,
	id domain.ItemID,
	checkedAt time.Time,
	breachCount int) error {
	_, err := p.Builder.Update(itemsTable).
		Set(goqu.Record{
			"last_checked": checkedAt,
			"breach_count": breachCount,
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update item scan state in pg: %w", err)
	}

	return nil
}
