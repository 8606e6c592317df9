package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	companyentity "marketlens/internal/feature/companies/domain/entity"
	"marketlens/internal/feature/watchlist/domain/entity"
	"marketlens/internal/feature/watchlist/usecase"
)

// setupTestDB prepares an in-memory SQLite database with the watchlist and
// company tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&entity.Watchlist{},
		&entity.WatchlistCompany{},
		&companyentity.Company{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedCompanies(t *testing.T, db *gorm.DB) {
	t.Helper()

	companies := []companyentity.Company{
		{ID: 1, Name: "Zeta Robotics", Status: companyentity.StatusActive},
		{ID: 2, Name: "Acme Fintech", Status: companyentity.StatusActive},
		{ID: 3, Name: "Mid Health", Status: companyentity.StatusActive},
	}
	require.NoError(t, db.Create(&companies).Error)
}

func TestWatchlistPostgres_CreateAndListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	first := &entity.Watchlist{UserID: 7, Name: "Fintech picks"}
	second := &entity.Watchlist{UserID: 7, Name: "Healthcare"}
	other := &entity.Watchlist{UserID: 9, Name: "Not mine"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))
	assert.NotZero(t, first.ID)

	rows, err := repo.ListByUser(ctx, 7)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Fintech picks", rows[0].Name)
	assert.Equal(t, "Healthcare", rows[1].Name)
}

func TestWatchlistPostgres_FindOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	wl := &entity.Watchlist{UserID: 7, Name: "Mine"}
	require.NoError(t, repo.Create(ctx, wl))

	t.Run("owner finds the watchlist", func(t *testing.T) {
		got, err := repo.FindOwned(ctx, wl.ID, 7)
		require.NoError(t, err)
		assert.Equal(t, "Mine", got.Name)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		_, err := repo.FindOwned(ctx, wl.ID, 9)
		assert.ErrorIs(t, err, usecase.ErrWatchlistNotFound)
	})

	t.Run("missing id gets not found", func(t *testing.T) {
		_, err := repo.FindOwned(ctx, 999, 7)
		assert.ErrorIs(t, err, usecase.ErrWatchlistNotFound)
	})
}

func TestWatchlistPostgres_Rename(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	wl := &entity.Watchlist{UserID: 7, Name: "Old name"}
	require.NoError(t, repo.Create(ctx, wl))

	require.NoError(t, repo.Rename(ctx, wl.ID, "New name"))

	got, err := repo.FindOwned(ctx, wl.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, "New name", got.Name)
}

func TestWatchlistPostgres_AddCompany(t *testing.T) {
	db := setupTestDB(t)
	seedCompanies(t, db)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	wl := &entity.Watchlist{UserID: 7, Name: "Picks"}
	require.NoError(t, repo.Create(ctx, wl))

	require.NoError(t, repo.AddCompany(ctx, wl.ID, 1))

	t.Run("duplicate membership is rejected", func(t *testing.T) {
		err := repo.AddCompany(ctx, wl.ID, 1)
		assert.ErrorIs(t, err, usecase.ErrAlreadyInWatchlist)
	})

	t.Run("same company in another watchlist is fine", func(t *testing.T) {
		other := &entity.Watchlist{UserID: 7, Name: "Other"}
		require.NoError(t, repo.Create(ctx, other))
		assert.NoError(t, repo.AddCompany(ctx, other.ID, 1))
	})
}

func TestWatchlistPostgres_RemoveCompany(t *testing.T) {
	db := setupTestDB(t)
	seedCompanies(t, db)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	wl := &entity.Watchlist{UserID: 7, Name: "Picks"}
	require.NoError(t, repo.Create(ctx, wl))
	require.NoError(t, repo.AddCompany(ctx, wl.ID, 1))

	require.NoError(t, repo.RemoveCompany(ctx, wl.ID, 1))

	t.Run("removing again reports absence", func(t *testing.T) {
		err := repo.RemoveCompany(ctx, wl.ID, 1)
		assert.ErrorIs(t, err, usecase.ErrNotInWatchlist)
	})

	t.Run("never-added company reports absence", func(t *testing.T) {
		err := repo.RemoveCompany(ctx, wl.ID, 3)
		assert.ErrorIs(t, err, usecase.ErrNotInWatchlist)
	})
}

func TestWatchlistPostgres_DeleteClearsMemberships(t *testing.T) {
	db := setupTestDB(t)
	seedCompanies(t, db)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	wl := &entity.Watchlist{UserID: 7, Name: "Picks"}
	require.NoError(t, repo.Create(ctx, wl))
	require.NoError(t, repo.AddCompany(ctx, wl.ID, 1))
	require.NoError(t, repo.AddCompany(ctx, wl.ID, 2))

	require.NoError(t, repo.Delete(ctx, wl.ID))

	_, err := repo.FindOwned(ctx, wl.ID, 7)
	assert.ErrorIs(t, err, usecase.ErrWatchlistNotFound)

	var memberships int64
	require.NoError(t, db.Model(&entity.WatchlistCompany{}).
		Where("watchlist_id = ?", wl.ID).
		Count(&memberships).Error)
	assert.Zero(t, memberships)
}

func TestWatchlistPostgres_CompaniesOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	seedCompanies(t, db)
	repo := NewWatchlistRepository(db)
	ctx := context.Background()

	wl := &entity.Watchlist{UserID: 7, Name: "Picks"}
	require.NoError(t, repo.Create(ctx, wl))
	require.NoError(t, repo.AddCompany(ctx, wl.ID, 1))
	require.NoError(t, repo.AddCompany(ctx, wl.ID, 2))

	rows, err := repo.Companies(ctx, wl.ID)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme Fintech", rows[0].Name)
	assert.Equal(t, "Zeta Robotics", rows[1].Name)
}
