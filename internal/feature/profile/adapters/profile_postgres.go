// Package adapters provides the repository implementations of the profile feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketlens/internal/feature/profile/domain/entity"
	"marketlens/internal/feature/profile/usecase"
)

// profilePostgres implements usecase.ProfileRepository with GORM. It also
// serves as the cache store's ProfileSource.
type profilePostgres struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfileRepository creates a profilePostgres bound to db.
func NewProfileRepository(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

func (r *profilePostgres) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save upserts on the user_id unique key so first writes and edits share
// one path.
func (r *profilePostgres) Save(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "company", "role", "avatar_key", "updated_at"}),
	}).Create(p).Error
}

func (r *profilePostgres) UpdateRole(ctx context.Context, userID uint, role string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("user_id = ?", userID).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProfileNotFound
	}
	return nil
}
