package repository

import (
	"context"
	"errors"
	"time"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, customerID int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// ユーザーに紐づく購入者を取得し、無ければ作成
func (r *CustomerGormRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	var customer model.Customer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("user_id = ?", userID).First(&customer).Error
		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		now := time.Now()
		newCustomer := model.Customer{
			UserID:    &userID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.Create(&newCustomer).Error; err != nil {
			// user_idのユニーク制約に当たったら再検索
			retryErr := tx.Where("user_id = ?", userID).First(&customer).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		customer = newCustomer
		return nil
	})

	if err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}
