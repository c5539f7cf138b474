package auth

import (
	"context"

	"breachwatch/pkg/domain"
)

// Service covers registration, login and the session token lifecycle.
//
//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	// Register creates a new account for the normalized email. Fails with
	// ErrDuplicateIdentifier when the email is already registered.
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a freshly issued session
	// token. Fails with ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate validates a presented token (signature, expiry, revocation
	// list) and resolves it to the owning user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// Logout revokes the presented token. Revoking an already-revoked token is
	// a no-op.
	Logout(ctx context.Context, token string) error
}
