package repository

import (
	"context"
	"errors"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"gorm.io/gorm"
)

type BrandGormRepository struct {
	db *gorm.DB
}

// DI
func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) List(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	if err := r.db.WithContext(ctx).Order("id asc").Find(&brands).Error; err != nil {
		return []model.Brand{}, err
	}
	return brands, nil
}

func (r *BrandGormRepository) FindBySlug(ctx context.Context, slug string) (model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Brand{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Brand{}, err
	}
	return b, nil
}
