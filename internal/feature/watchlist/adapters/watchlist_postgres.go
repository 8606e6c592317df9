// Package adapters provides the repository implementations of the watchlist feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	companyentity "marketlens/internal/feature/companies/domain/entity"
	"marketlens/internal/feature/watchlist/domain/entity"
	"marketlens/internal/feature/watchlist/usecase"
)

const pgUniqueViolation = "23505"

// watchlistPostgres implements usecase.WatchlistRepository with GORM.
type watchlistPostgres struct {
	db *gorm.DB
}

var _ usecase.WatchlistRepository = (*watchlistPostgres)(nil)

// NewWatchlistRepository creates a watchlistPostgres bound to db.
func NewWatchlistRepository(db *gorm.DB) *watchlistPostgres {
	return &watchlistPostgres{db: db}
}

func (r *watchlistPostgres) Create(ctx context.Context, wl *entity.Watchlist) error {
	return r.db.WithContext(ctx).Create(wl).Error
}

func (r *watchlistPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Watchlist, error) {
	var rows []entity.Watchlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *watchlistPostgres) FindOwned(ctx context.Context, id, userID uint) (*entity.Watchlist, error) {
	var wl entity.Watchlist
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&wl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrWatchlistNotFound
		}
		return nil, err
	}
	return &wl, nil
}

func (r *watchlistPostgres) Rename(ctx context.Context, id uint, name string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Watchlist{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// Delete removes the watchlist and its membership rows in one transaction.
func (r *watchlistPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("watchlist_id = ?", id).Delete(&entity.WatchlistCompany{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Watchlist{}, id).Error
	})
}

func (r *watchlistPostgres) AddCompany(ctx context.Context, watchlistID, companyID uint) error {
	row := &entity.WatchlistCompany{WatchlistID: watchlistID, CompanyID: companyID}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return usecase.ErrAlreadyInWatchlist
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyInWatchlist
		}
		return err
	}
	return nil
}

func (r *watchlistPostgres) RemoveCompany(ctx context.Context, watchlistID, companyID uint) error {
	res := r.db.WithContext(ctx).
		Where("watchlist_id = ? AND company_id = ?", watchlistID, companyID).
		Delete(&entity.WatchlistCompany{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotInWatchlist
	}
	return nil
}

func (r *watchlistPostgres) Companies(ctx context.Context, watchlistID uint) ([]companyentity.Company, error) {
	var rows []companyentity.Company
	err := r.db.WithContext(ctx).
		Model(&companyentity.Company{}).
		Joins("JOIN watchlist_companies ON watchlist_companies.company_id = companies.id").
		Where("watchlist_companies.watchlist_id = ?", watchlistID).
		Order("companies.name ASC").
		Find(&rows).Error
	return rows, err
}
