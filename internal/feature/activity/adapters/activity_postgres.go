// Package adapters provides the repository implementations of the activity feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"marketlens/internal/feature/activity/domain/entity"
	"marketlens/internal/feature/activity/usecase"
)

// activityPostgres implements usecase.ActivityRepository with GORM.
type activityPostgres struct {
	db *gorm.DB
}

var _ usecase.ActivityRepository = (*activityPostgres)(nil)

// NewActivityRepository creates an activityPostgres bound to db.
func NewActivityRepository(db *gorm.DB) *activityPostgres {
	return &activityPostgres{db: db}
}

func (r *activityPostgres) Insert(ctx context.Context, log *entity.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityPostgres) ListByUser(ctx context.Context, userID uint, limit int) ([]entity.ActivityLog, error) {
	var rows []entity.ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
