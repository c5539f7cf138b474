package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"breachwatch/pkg/storage"
	"breachwatch/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, txStorage.Rollback())
}

func TestPgSQL_CommitRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CommitsOnSuccess(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.RevokeToken(ctx, "committed-token")
	})
	require.NoError(t, err)

	revoked, err := pg.IsTokenRevoked(ctx, "committed-token")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestPgSQL_WithTx_RollsBackOnError(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	boom := errors.New("boom")

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.RevokeToken(ctx, "discarded-token"); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	revoked, err := pg.IsTokenRevoked(ctx, "discarded-token")
	require.NoError(t, err)
	require.False(t, revoked)
}
