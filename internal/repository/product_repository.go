package repository

import (
	"context"
	"errors"

	"crosstop/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 一覧検索の条件。nilの項目は絞り込まない
type ProductListQuery struct {
	Name       string
	Gender     *model.Gender
	BrandID    *int64
	Size       *float64
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       string
}

// 商品の取得だけを約束（書き込みは管理者領域でスコープ外）
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
	ListImages(ctx context.Context, productID int64) ([]model.ProductImage, error)
}
