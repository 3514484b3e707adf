package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"github.com/shopspring/decimal"
)

// CatalogUsecase はカタログの読み取り専用ロジック（状態を持たない）
type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	brandRepo    repo.BrandRepository

	// 価格帯の片側だけ来たときの補完値（設定から注入）
	priceFloor   decimal.Decimal
	priceCeiling decimal.Decimal
}

func NewCatalogUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	brandRepo repo.BrandRepository,
	priceFloor decimal.Decimal,
	priceCeiling decimal.Decimal,
) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		priceFloor:   priceFloor,
		priceCeiling: priceCeiling,
	}
}

// 一覧画面のクエリパラメータ。Genderは公開値（man/woman/kid）
type FilterInput struct {
	Name     string
	Gender   string
	BrandID  *int64
	Size     *float64
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
}

type ProductDetailOutput struct {
	Product model.Product        `json:"product"`
	Images  []model.ProductImage `json:"images"`
}

// ListProducts は絞り込み・並び替え済みの商品一覧を返す
func (u *CatalogUsecase) ListProducts(ctx context.Context, in FilterInput) ([]model.Product, error) {
	q, err := u.buildQuery(in)
	if err != nil {
		return []model.Product{}, err
	}

	products, err := u.productRepo.List(ctx, q)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// ListByCategory はカテゴリ配下を同じ条件で絞り込む
func (u *CatalogUsecase) ListByCategory(ctx context.Context, slug string, in FilterInput) (model.Category, []model.Product, error) {
	category, err := u.categoryRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, nil, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	q, err := u.buildQuery(in)
	if err != nil {
		return model.Category{}, nil, err
	}
	q.CategoryID = &category.ID

	products, err := u.productRepo.List(ctx, q)
	if err != nil {
		return model.Category{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return category, products, nil
}

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, slug string) (ProductDetailOutput, error) {
	p, err := u.productRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	images, err := u.productRepo.ListImages(ctx, p.ID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductDetailOutput{Product: p, Images: images}, nil
}

// ナビゲーション用（全画面共通の部品）
func (u *CatalogUsecase) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CatalogUsecase) Brands(ctx context.Context) ([]model.Brand, error) {
	brands, err := u.brandRepo.List(ctx)
	if err != nil {
		return []model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return brands, nil
}

// buildQuery は公開の絞り込み条件をリポジトリのクエリへ写す
func (u *CatalogUsecase) buildQuery(in FilterInput) (repo.ProductListQuery, error) {
	q := repo.ProductListQuery{
		Name:    strings.TrimSpace(in.Name),
		BrandID: in.BrandID,
		Size:    in.Size,
	}

	// 公開値→保存値。知らない値は絞り込まない
	switch in.Gender {
	case "man":
		g := model.GenderMale
		q.Gender = &g
	case "woman":
		g := model.GenderFemale
		q.Gender = &g
	case "kid":
		g := model.GenderChild
		q.Gender = &g
	}

	// 片側だけの価格帯は設定の下限/上限で補完する
	minPrice := in.MinPrice
	maxPrice := in.MaxPrice
	if maxPrice != nil && minPrice == nil {
		floor := u.priceFloor
		minPrice = &floor
	}
	if minPrice != nil && maxPrice == nil {
		ceiling := u.priceCeiling
		maxPrice = &ceiling
	}

	if minPrice != nil && minPrice.IsNegative() {
		return repo.ProductListQuery{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if maxPrice != nil && maxPrice.IsNegative() {
		return repo.ProductListQuery{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if minPrice != nil && maxPrice != nil && minPrice.GreaterThan(*maxPrice) {
		return repo.ProductListQuery{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}

	q.MinPrice = minPrice
	q.MaxPrice = maxPrice

	switch in.Sort {
	case "", "price_asc", "price_desc":
		q.Sort = in.Sort
	default:
		return repo.ProductListQuery{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	return q, nil
}
