package postgres

import (
	"context"
	"fmt"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const usersTable = "users"

// CreateUser inserts a new user row. The unique constraint on email is the
// authority on duplicates: the insert uses ON CONFLICT DO NOTHING and reports
// storage.ErrDuplicateUser when no row came back, so two concurrent
// registrations of the same email cannot both succeed.
func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, storage.ErrDuplicateUser
	}

	return stored.ToDomain(), nil
}

// UserByEmail fetches a user by normalized email, returning nil when absent.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByID fetches a user by ID, returning nil when absent.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
