package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const revokedTokensTable = "revoked_tokens"

// RevokeToken inserts the token into the revocation list. The primary key on
// the token column plus ON CONFLICT DO NOTHING makes revocation idempotent.
func (p *PgSQL) RevokeToken(ctx context.Context, token string) error {
	_, err := p.Builder.Insert(revokedTokensTable).
		Rows(goqu.Record{"token": token}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store revoked token into pg: %w", err)
	}

	return nil
}

// IsTokenRevoked reports whether the token is present in the revocation list.
// Every call hits the database; revocations must be visible immediately.
func (p *PgSQL) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	count, err := p.Builder.From(revokedTokensTable).
		Where(goqu.I("token").Eq(token)).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check revoked token in pg: %w", err)
	}

	return count > 0, nil
}
