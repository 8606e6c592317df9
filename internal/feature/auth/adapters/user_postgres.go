// Package adapters provides the repository implementations of the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"marketlens/internal/feature/auth/domain/entity"
	"marketlens/internal/feature/auth/usecase"
)

// pgUniqueViolation is the Postgres error code for unique-key violations.
const pgUniqueViolation = "23505"

// userPostgres implements usecase.UserRepository with GORM.
type userPostgres struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository creates a userPostgres bound to db.
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts the user, translating duplicate-email violations into
// usecase.ErrEmailAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return usecase.ErrEmailAlreadyExists
		}
		// SQLite in tests reports constraint violations through gorm
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the user matching email, or usecase.ErrUserNotFound.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user matching id, or usecase.ErrUserNotFound.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdatePassword replaces the stored hash for id.
func (r *userPostgres) UpdatePassword(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("id = ?", id).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
