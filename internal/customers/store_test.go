package customers

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/flow/pkg/flow"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "customers.db"))
	store, err := OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	found, err := store.SearchByCompany(ctx, "Al")
	require.NoError(t, err)
	assert.Equal(t, []Customer{seed}, found)

	require.NoError(t, store.Add(ctx, Customer{ID: "INITE", CompanyName: "Initech"}))
	found, err = store.SearchByCompany(ctx, "tech")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "INITE", found[0].ID)

	found, err = store.SearchByCompany(ctx, "100%")
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NotNil(t, found)
}

func TestSQLiteStore_DuplicateIsConstraintFailure(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	err := store.Add(context.Background(), acme)
	require.Error(t, err)
	assert.Equal(t, flow.KindConstraintFailure, ClassifyDBError(err).Kind())
}

func TestOpenSQLite_Reopen(t *testing.T) {
	t.Parallel()
	dsn := fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "twice.db"))

	first, err := OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	defer second.Close()

	found, err := second.SearchByCompany(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
