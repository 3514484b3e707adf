package repository

import (
	"context"

	"crosstop/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.CartItem, error)
	// (cart, product) で1明細。既存があればそれを返す（createdで区別）
	GetOrCreate(ctx context.Context, item model.CartItem) (model.CartItem, bool, error)
	DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error
}
