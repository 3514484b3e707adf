package repository

import (
	"context"

	"crosstop/internal/domain/model"

	"github.com/shopspring/decimal"
)

type CartRepository interface {
	// 所有者の in_order=false カートを取得し、無ければ作成
	GetOrCreateActiveByOwner(ctx context.Context, customerID int64) (model.Cart, error)
	// セッショントークンで匿名カートを取得し、無ければ作成
	GetOrCreateAnonymousBySession(ctx context.Context, sessionToken string) (model.Cart, error)
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
	// 行ロック付き取得（カート変更・チェックアウトで使う）
	FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error)
	// total_products / final_price をまとめて更新
	UpdateAggregates(ctx context.Context, cartID int64, totalProducts int64, finalPrice decimal.Decimal) error
	// チェックアウト時の凍結
	MarkInOrder(ctx context.Context, cartID int64) error
}
