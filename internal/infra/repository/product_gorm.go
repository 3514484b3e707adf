package repository

import (
	"context"
	"errors"
	"strings"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 販売中の商品を、検索/性別/ブランド/サイズ/価格帯/ソート付きで返す。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	// 販売中（in_available=true）のみ
	tx = tx.Where("in_available = ?", true)

	if strings.TrimSpace(q.Name) != "" {
		like := "%" + strings.TrimSpace(q.Name) + "%"
		tx = tx.Where("name ILIKE ?", like)
	}

	if q.Gender != nil {
		tx = tx.Where("gender = ?", *q.Gender)
	}
	if q.BrandID != nil {
		tx = tx.Where("brand_id = ?", *q.BrandID)
	}
	if q.Size != nil {
		tx = tx.Where("size = ?", *q.Size)
	}
	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}

	// 価格帯
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	// sort（cheap first / expensive first は同じ絞り込みの並び替え違い）
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id desc")
	default:
		tx = tx.Order("created_at desc").Order("id desc")
	}

	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// slugで商品を取得
func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 追加写真の一覧
func (r *ProductGormRepository) ListImages(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	var images []model.ProductImage

	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&images).Error; err != nil {
		return []model.ProductImage{}, err
	}

	return images, nil
}
