// Package adapters provides the repository implementations of the contact feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"marketlens/internal/feature/contact/domain/entity"
	"marketlens/internal/feature/contact/usecase"
)

// messagePostgres implements usecase.ContactRepository with GORM.
type messagePostgres struct {
	db *gorm.DB
}

var _ usecase.ContactRepository = (*messagePostgres)(nil)

// NewContactRepository creates a messagePostgres bound to db.
func NewContactRepository(db *gorm.DB) *messagePostgres {
	return &messagePostgres{db: db}
}

func (r *messagePostgres) Insert(ctx context.Context, msg *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messagePostgres) List(ctx context.Context, status string) ([]entity.ContactMessage, error) {
	q := r.db.WithContext(ctx).Model(&entity.ContactMessage{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []entity.ContactMessage
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *messagePostgres) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMessageNotFound
	}
	return nil
}
