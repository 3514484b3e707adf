package repository

import (
	"context"

	"crosstop/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
}
