package storage

import "context"

// TokenStorage defines persistence operations for the token revocation list.
// The list is append-only; once a token is present it is permanently unusable
// regardless of its embedded expiry.
type TokenStorage interface {
	// RevokeToken inserts the token into the revocation list. Revoking an
	// already-revoked token is a no-op, not an error.
	RevokeToken(ctx context.Context, token string) error
	// IsTokenRevoked reports revocation-list membership. Implementations must
	// not cache the result; revocation has to be visible to all validation
	// calls immediately after it commits.
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}
