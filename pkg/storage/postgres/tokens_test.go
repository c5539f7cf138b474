package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_RevokeToken_Idempotent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.RevokeToken(ctx, "token-t"))
	require.NoError(t, pg.RevokeToken(ctx, "token-t"))

	revoked, err := pg.IsTokenRevoked(ctx, "token-t")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestPgSQL_IsTokenRevoked_Unknown(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	revoked, err := pg.IsTokenRevoked(context.Background(), "never-seen")
	require.NoError(t, err)
	require.False(t, revoked)
}
