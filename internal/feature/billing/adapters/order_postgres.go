// Package adapters provides the repository implementations of the billing feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketlens/internal/feature/billing/domain/entity"
	"marketlens/internal/feature/billing/usecase"
)

// orderPostgres implements usecase.OrderRepository with GORM.
type orderPostgres struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderPostgres)(nil)

// NewOrderRepository creates an orderPostgres bound to db.
func NewOrderRepository(db *gorm.DB) *orderPostgres {
	return &orderPostgres{db: db}
}

func (r *orderPostgres) Create(ctx context.Context, o *entity.PaymentOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderPostgres) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error) {
	var o entity.PaymentOrder
	err := r.db.WithContext(ctx).
		Where("gateway_order_id = ?", gatewayOrderID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderPostgres) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&entity.PaymentOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}
