package repository

import (
	"context"

	"crosstop/internal/domain/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer model.Customer) (model.Customer, error)
	FindByID(ctx context.Context, customerID int64) (model.Customer, error)
	FindByUserID(ctx context.Context, userID int64) (model.Customer, error)
	// 無ければ作る（毎リクエストの解決で呼ばれるので冪等）
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Customer, error)
}
