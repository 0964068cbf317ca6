package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRepo_LatestEmpty(t *testing.T) {
	repo := NewSQLiteImportRepo(testutil.NewTestDB(t))

	_, err := repo.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportRepo_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteImportRepo(testutil.NewTestDB(t))
	base := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &HistoryImport{ID: "first", Source: "term1.xlsx", RowCount: 120, HasGPA: true, ImportedAt: base}))
	require.NoError(t, repo.Create(ctx, &HistoryImport{ID: "second", Source: "term2.csv", RowCount: 80, ImportedAt: base.Add(24 * time.Hour)}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].ID)
	assert.Equal(t, "first", list[1].ID)
	assert.True(t, list[1].HasGPA)
	assert.Equal(t, 120, list[1].RowCount)
	assert.True(t, base.Equal(list[1].ImportedAt))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "term2.csv", latest.Source)
}
