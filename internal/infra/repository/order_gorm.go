package repository

import (
	"context"
	"errors"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// 購入者の注文履歴（新しい順）
func (r *OrderGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id desc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}

	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}
