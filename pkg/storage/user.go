package storage

import (
	"context"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"
)

// ErrDuplicateUser is returned by CreateUser when the email is already taken.
// It carries the CONFLICT kind so callers can translate it as they see fit.
var ErrDuplicateUser = serrors.With(serrors.ErrConflict, "email already registered") //nolint: gochecknoglobals

// UserStorage defines persistence operations for user accounts.
type UserStorage interface {
	// CreateUser inserts a new user and returns the stored row including
	// generated fields. ErrDuplicateUser is returned when the (normalized)
	// email already exists; the check relies on the unique constraint, so
	// concurrent registrations of the same email cannot both succeed.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail fetches a user by normalized email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
