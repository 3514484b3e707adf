package repository

import (
	"context"
	"errors"
	"time"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 所有者の in_order=false カートを取得し、無ければ作成
func (r *CartGormRepository) GetOrCreateActiveByOwner(ctx context.Context, customerID int64) (model.Cart, error) {
	var cart model.Cart

	// トランザクションで探す→無ければ作る
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND in_order = ?", customerID, false).
			Order("id desc").
			First(&cart).Error

		if findErr == nil {
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る
		now := time.Now()
		newCart := model.Cart{
			OwnerID:    &customerID,
			FinalPrice: decimal.Zero,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := tx.Create(&newCart).Error; err != nil {
			// 同時作成と競合したらもう一度探す
			retryErr := tx.
				Where("owner_id = ? AND in_order = ?", customerID, false).
				Order("id desc").
				First(&cart).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		cart = newCart
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// セッショントークンで匿名カートを取得し、無ければ作成
func (r *CartGormRepository) GetOrCreateAnonymousBySession(ctx context.Context, sessionToken string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_token = ? AND in_order = ?", sessionToken, false).
			Order("id desc").
			First(&cart).Error

		if findErr == nil {
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		now := time.Now()
		newCart := model.Cart{
			SessionToken:     sessionToken,
			ForAnonymousUser: true,
			FinalPrice:       decimal.Zero,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		if err := tx.Create(&newCart).Error; err != nil {
			retryErr := tx.
				Where("session_token = ? AND in_order = ?", sessionToken, false).
				Order("id desc").
				First(&cart).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		cart = newCart
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// IDでカートを取得
func (r *CartGormRepository) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 行ロック付き取得。呼び出し側のトランザクション内で使う
func (r *CartGormRepository) FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// total_products / final_price をまとめて更新
func (r *CartGormRepository) UpdateAggregates(ctx context.Context, cartID int64, totalProducts int64, finalPrice decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"total_products": totalProducts,
			"final_price":    finalPrice,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// carts.in_order を立てて凍結する
func (r *CartGormRepository) MarkInOrder(ctx context.Context, cartID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ? AND in_order = ?", cartID, false).
		Update("in_order", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
