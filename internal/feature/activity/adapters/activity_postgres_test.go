package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketlens/internal/feature/activity/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&entity.ActivityLog{}), "failed to migrate tables")

	return db
}

func TestActivityPostgres_InsertAndListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	logs := []*entity.ActivityLog{
		{ID: "a1", UserID: 7, Action: entity.ActionLogin, Target: "email login", CreatedAt: base},
		{ID: "a2", UserID: 7, Action: entity.ActionSearch, Target: "q=acme", CreatedAt: base.Add(time.Hour)},
		{ID: "a3", UserID: 7, Action: entity.ActionExport, Target: "market report", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "b1", UserID: 9, Action: entity.ActionLogin, Target: "email login", CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, l := range logs {
		require.NoError(t, repo.Insert(ctx, l))
	}

	t.Run("newest first, scoped to the user", func(t *testing.T) {
		rows, err := repo.ListByUser(ctx, 7, 50)

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "a3", rows[0].ID)
		assert.Equal(t, "a2", rows[1].ID)
		assert.Equal(t, "a1", rows[2].ID)
	})

	t.Run("limit truncates the page", func(t *testing.T) {
		rows, err := repo.ListByUser(ctx, 7, 2)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "a3", rows[0].ID)
	})

	t.Run("user with no activity gets an empty page", func(t *testing.T) {
		rows, err := repo.ListByUser(ctx, 42, 50)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
