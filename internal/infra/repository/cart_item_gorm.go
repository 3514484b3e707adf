package repository

import (
	"context"
	"errors"
	"time"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// カート明細を一覧取得
func (r *CartItemGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}

	return items, nil
}

// 購入者の明細を一覧取得（リクエスト解決で使う）
func (r *CartItemGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}

	return items, nil
}

// (cart, product) で1明細。既存があればそれを返す。
// 複合ユニーク制約があるので同時挿入は再検索で吸収する
func (r *CartItemGormRepository) GetOrCreate(ctx context.Context, item model.CartItem) (model.CartItem, bool, error) {
	var existing model.CartItem
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
			First(&existing).Error

		if findErr == nil {
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無い場合は新規作成
		item.CreatedAt = time.Now()
		if err := tx.Create(&item).Error; err != nil {
			retryErr := tx.
				Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
				First(&existing).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		existing = item
		created = true
		return nil
	})

	if err != nil {
		return model.CartItem{}, false, err
	}
	return existing, created, nil
}

// カート内のその商品の明細を削除
func (r *CartItemGormRepository) DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
