package postgres

import (
	"context"
	"fmt"

	"breachwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const breachEventsTable = "breach_events"

// StoreBreachEvent appends a breach event for (item, source) unless one
// already exists. The unique constraint plus ON CONFLICT DO NOTHING make the
// check-then-insert race-free: when two scans of the same item collide, only
// one insert reports true and the other is absorbed as "already recorded".
func (p *PgSQL) StoreBreachEvent(ctx context.Context, event domain.BreachEvent) (bool, error) {
	var row PgBreachEvent
	row.FromDomain(event)

	res, err := p.Builder.Insert(breachEventsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store breach event into pg: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read rows affected: %w", err)
	}

	return inserted > 0, nil
}

// BreachSourcesByItem returns the distinct source names recorded for the item.
func (p *PgSQL) BreachSourcesByItem(ctx context.Context, itemID domain.ItemID) ([]string, error) {
	var sources []string
	if err := p.Builder.From(breachEventsTable).
		Select(goqu.I("source")).
		Where(goqu.I("item_id").Eq(uuid.UUID(itemID))).
		Executor().ScanValsContext(ctx, &sources); err != nil {
		return nil, fmt.Errorf("could not fetch breach sources from pg: %w", err)
	}

	return sources, nil
}

// UserBreachReports returns all breach events across the user's items joined
// with the items' kind and value, most recent detection first.
func (p *PgSQL) UserBreachReports(ctx context.Context, userID domain.UserID) ([]domain.BreachReport, error) {
	var rows []PgBreachReport
	if err := p.Builder.From(goqu.T(breachEventsTable).As("e")).
		Select(
			goqu.I("e.id").As("id"),
			goqu.I("e.item_id").As("item_id"),
			goqu.I("e.source").As("source"),
			goqu.I("e.details").As("details"),
			goqu.I("e.detected_at").As("detected_at"),
			goqu.I("i.kind").As("item_kind"),
			goqu.I("i.value").As("item_value"),
		).
		Join(goqu.T(itemsTable).As("i"), goqu.On(goqu.I("e.item_id").Eq(goqu.I("i.id")))).
		Where(goqu.I("i.user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("e.detected_at").Desc(), goqu.I("e.id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user breach reports from pg: %w", err)
	}

	out := make([]domain.BreachReport, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
