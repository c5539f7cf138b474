package postgres

import (
	"database/sql"
	"time"

	"breachwatch/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

type PgItem struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Kind  string `db:"kind"`
	Value string `db:"value"`

	LastChecked sql.NullTime `db:"last_checked" goqu:"skipinsert"`
	BreachCount int          `db:"breach_count" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgItem) ToDomain() *domain.MonitoredItem {
	item := &domain.MonitoredItem{
		ID:          domain.ItemID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Kind:        domain.ItemKind(p.Kind),
		Value:       p.Value,
		BreachCount: p.BreachCount,
		CreatedAt:   p.CreatedAt,
	}
	if p.LastChecked.Valid {
		checked := p.LastChecked.Time
		item.LastChecked = &checked
	}

	return item
}

func (p *PgItem) FromDomain(item domain.MonitoredItem) {
	*p = PgItem{
		ID:          uuid.UUID(item.ID),
		UserID:      uuid.UUID(item.UserID),
		Kind:        string(item.Kind),
		Value:       item.Value,
		BreachCount: item.BreachCount,
		CreatedAt:   item.CreatedAt,
	}
	if item.LastChecked != nil {
		p.LastChecked = sql.NullTime{Time: *item.LastChecked, Valid: true}
	}
}

func pgItemsToDomain(items []PgItem) []domain.MonitoredItem {
	out := make([]domain.MonitoredItem, 0, len(items))
	for i := range items {
		out = append(out, *items[i].ToDomain())
	}

	return out
}

type PgBreachEvent struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	ItemID uuid.UUID `db:"item_id"`

	Source  string `db:"source"`
	Details string `db:"details"`

	DetectedAt time.Time `db:"detected_at" goqu:"skipinsert"`
}

func (p *PgBreachEvent) ToDomain() *domain.BreachEvent {
	return &domain.BreachEvent{
		ID:         domain.BreachEventID(p.ID),
		ItemID:     domain.ItemID(p.ItemID),
		Source:     p.Source,
		Details:    p.Details,
		DetectedAt: p.DetectedAt,
	}
}

func (p *PgBreachEvent) FromDomain(event domain.BreachEvent) {
	*p = PgBreachEvent{
		ID:         uuid.UUID(event.ID),
		ItemID:     uuid.UUID(event.ItemID),
		Source:     event.Source,
		Details:    event.Details,
		DetectedAt: event.DetectedAt,
	}
}

// PgBreachReport is a breach event row joined with its item's kind and value.
type PgBreachReport struct {
	PgBreachEvent

	ItemKind  string `db:"item_kind"`
	ItemValue string `db:"item_value"`
}

func (p *PgBreachReport) ToDomain() *domain.BreachReport {
	return &domain.BreachReport{
		BreachEvent: *p.PgBreachEvent.ToDomain(),
		ItemKind:    domain.ItemKind(p.ItemKind),
		ItemValue:   p.ItemValue,
	}
}
