package repository

import (
	"context"

	"crosstop/internal/domain/model"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
}
