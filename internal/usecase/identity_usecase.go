package usecase

import (
	"context"
	"net/http"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"
)

// RequestContext はリクエストごとに解決した (購入者, カート, 明細)。
// ミドルウェアが作り、ハンドラに型付きで渡す
type RequestContext struct {
	Customer *model.Customer
	Cart     model.Cart
	Items    []model.CartItem
}

// IdentityUsecase は認証状態から購入者とアクティブカートを解決する。
// カート状態に触れる全リクエストの前段で毎回呼ばれる（冪等）
type IdentityUsecase struct {
	customerRepo repo.CustomerRepository
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
}

func NewIdentityUsecase(
	customerRepo repo.CustomerRepository,
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
) *IdentityUsecase {
	return &IdentityUsecase{
		customerRepo: customerRepo,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
	}
}

// Resolve は (customer, cart, items) を返す。作成は最大2回（Customer, Cart）。
// 未認証は明細なし。匿名カートはセッショントークンでスコープする
func (u *IdentityUsecase) Resolve(ctx context.Context, userID int64, authenticated bool, sessionToken string) (RequestContext, error) {
	if !authenticated {
		if sessionToken == "" {
			return RequestContext{}, NewHTTPError(http.StatusInternalServerError, "missing session token")
		}

		cart, err := u.cartRepo.GetOrCreateAnonymousBySession(ctx, sessionToken)
		if err != nil {
			return RequestContext{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 未認証に明細は無い
		return RequestContext{Cart: cart}, nil
	}

	customer, err := u.customerRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return RequestContext{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartItemRepo.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return RequestContext{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByOwner(ctx, customer.ID)
	if err != nil {
		return RequestContext{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return RequestContext{
		Customer: &customer,
		Cart:     cart,
		Items:    items,
	}, nil
}
