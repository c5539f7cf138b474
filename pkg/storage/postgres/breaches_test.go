package postgres_test

import (
	"context"
	"testing"

	"breachwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreBreachEvent_DeduplicatesPerItemAndSource(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, pg, "alice@example.com")
	item := createTestItem(t, pg, user.ID, "watched@example.com")
	otherItem := createTestItem(t, pg, user.ID, "other@example.com")

	ctx := context.Background()

	inserted, err := pg.StoreBreachEvent(ctx, domain.BreachEvent{
		ItemID:  item.ID,
		Source:  "Adobe",
		Details: "Compromised in Adobe breach",
	})
	require.NoError(t, err)
	require.True(t, inserted)

	// same (item, source) again: absorbed by the unique constraint
	inserted, err = pg.StoreBreachEvent(ctx, domain.BreachEvent{
		ItemID:  item.ID,
		Source:  "Adobe",
		Details: "Compromised in Adobe breach",
	})
	require.NoError(t, err)
	require.False(t, inserted)

	// same source for a different item is a distinct exposure
	inserted, err = pg.StoreBreachEvent(ctx, domain.BreachEvent{
		ItemID:  otherItem.ID,
		Source:  "Adobe",
		Details: "Compromised in Adobe breach",
	})
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestPgSQL_BreachSourcesByItem(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, pg, "alice@example.com")
	item := createTestItem(t, pg, user.ID, "watched@example.com")

	ctx := context.Background()
	for _, source := range []string{"Adobe", "LinkedIn"} {
		_, err := pg.StoreBreachEvent(ctx, domain.BreachEvent{
			ItemID:  item.ID,
			Source:  source,
			Details: "Compromised in " + source + " breach",
		})
		require.NoError(t, err)
	}

	sources, err := pg.BreachSourcesByItem(ctx, item.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Adobe", "LinkedIn"}, sources)
}

func TestPgSQL_UserBreachReports(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, pg, "alice@example.com")
	other := createTestUser(t, pg, "bob@example.com")

	item := createTestItem(t, pg, user.ID, "watched@example.com")
	otherItem := createTestItem(t, pg, other.ID, "other@example.com")

	ctx := context.Background()
	for _, source := range []string{"Adobe", "LinkedIn"} {
		_, err := pg.StoreBreachEvent(ctx, domain.BreachEvent{
			ItemID:  item.ID,
			Source:  source,
			Details: "Compromised in " + source + " breach",
		})
		require.NoError(t, err)
	}
	_, err := pg.StoreBreachEvent(ctx, domain.BreachEvent{
		ItemID:  otherItem.ID,
		Source:  "Adobe",
		Details: "Compromised in Adobe breach",
	})
	require.NoError(t, err)

	reports, err := pg.UserBreachReports(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for _, report := range reports {
		require.Equal(t, item.ID, report.ItemID)
		require.Equal(t, domain.ItemKindEmail, report.ItemKind)
		require.Equal(t, "watched@example.com", report.ItemValue)
		require.False(t, report.DetectedAt.IsZero())
	}

	// newest first
	require.False(t, reports[0].DetectedAt.Before(reports[1].DetectedAt))
}
