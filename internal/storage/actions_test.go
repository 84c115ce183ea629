package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codguard/codguard/internal/dispatch"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListActions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := dispatch.ActionRecord{
		CreatedAt: time.Now().Add(-time.Minute),
		Domain:    "orders",
		Action:    "confirm",
		Targets:   []string{"O1", "O2"},
		Outcome:   "ok",
	}
	second := dispatch.ActionRecord{
		CreatedAt: time.Now(),
		Domain:    "fake-orders",
		Action:    "set-status",
		Targets:   []string{"F1"},
		Outcome:   "error",
		Detail:    "backend returned 500: Internal server error",
	}

	require.NoError(t, store.RecordAction(ctx, first))
	require.NoError(t, store.RecordAction(ctx, second))

	entries, err := store.ListActions(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "set-status", entries[0].Action, "newest first")
	assert.Equal(t, []string{"F1"}, entries[0].Targets)
	assert.Equal(t, "error", entries[0].Outcome)
	assert.Equal(t, []string{"O1", "O2"}, entries[1].Targets)
}

func TestListActions_DomainFilterAndLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordAction(ctx, dispatch.ActionRecord{
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
			Domain:    "orders",
			Action:    "cancel",
			Targets:   []string{"O1"},
			Outcome:   "ok",
		}))
	}
	require.NoError(t, store.RecordAction(ctx, dispatch.ActionRecord{
		CreatedAt: time.Now(),
		Domain:    "risk-areas",
		Action:    "set-status",
		Targets:   []string{"H1"},
		Outcome:   "ok",
	}))

	orders, err := store.ListActions(ctx, "orders", 3)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	for _, e := range orders {
		assert.Equal(t, "orders", e.Domain)
	}

	risk, err := store.ListActions(ctx, "risk-areas", 0)
	require.NoError(t, err)
	assert.Len(t, risk, 1)
}

func TestOpen_MigratesIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening an already-migrated database is fine.
	store, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
