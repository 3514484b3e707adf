package repository

import (
	"context"

	"crosstop/internal/domain/model"
)

type BrandRepository interface {
	List(ctx context.Context) ([]model.Brand, error)
	FindBySlug(ctx context.Context, slug string) (model.Brand, error)
}
