package usecase

import (
	"context"
	"errors"
	"net/http"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はカート台帳の業務ロジック。
// 明細の増減と集計（total_products / final_price）を常に同じトランザクションで揃える
type CartUsecase struct {
	tx           repo.TransactionManager
	productRepo  repo.ProductRepository
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
}

func NewCartUsecase(
	tx repo.TransactionManager,
	productRepo repo.ProductRepository,
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
) *CartUsecase {
	return &CartUsecase{
		tx:           tx,
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
	}
}

// price は追加時点のスナップショットを返す
type CartItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

type CartResponse struct {
	ID            int64              `json:"id"`
	Items         []CartItemResponse `json:"items"`
	TotalProducts int64              `json:"total_products"`
	FinalPrice    decimal.Decimal    `json:"final_price"`
	InOrder       bool               `json:"in_order"`
}

// GetCart は解決済みカートの表示用ビュー
func (u *CartUsecase) GetCart(ctx context.Context, rc RequestContext) (CartResponse, error) {
	return u.buildCartResponse(ctx, rc.Cart.ID)
}

// AddToCart は商品をカートに追加する。
// 同じ商品の再追加は既存明細を返すだけで増えない（冪等）。
// 追加には認証済みの購入者が必要
func (u *CartUsecase) AddToCart(ctx context.Context, rc RequestContext, slug string) (CartResponse, error) {
	if rc.Customer == nil {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}

	customerID := rc.Customer.ID

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindBySlug(ctx, slug)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// カートをロックして凍結チェック
		cart, err := r.Carts().FindByIDForUpdate(ctx, rc.Cart.ID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if cart.InOrder {
			return ErrCartFrozen
		}

		// 価格は追加時点のスナップショット
		_, _, err = r.CartItems().GetOrCreate(ctx, model.CartItem{
			CustomerID: &customerID,
			CartID:     cart.ID,
			ProductID:  p.ID,
			FinalPrice: p.Price,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return u.recalcCart(ctx, r, cart.ID)
	})

	if err != nil {
		return CartResponse{}, err
	}
	return u.buildCartResponse(ctx, rc.Cart.ID)
}

// RemoveFromCart はカートからその商品の明細を外す。
// 明細が無ければ not found で、集計には触れない
func (u *CartUsecase) RemoveFromCart(ctx context.Context, rc RequestContext, slug string) (CartResponse, error) {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindBySlug(ctx, slug)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByIDForUpdate(ctx, rc.Cart.ID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if cart.InOrder {
			return ErrCartFrozen
		}

		if err := r.CartItems().DeleteByCartAndProduct(ctx, cart.ID, p.ID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not in cart")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return u.recalcCart(ctx, r, cart.ID)
	})

	if err != nil {
		return CartResponse{}, err
	}
	return u.buildCartResponse(ctx, rc.Cart.ID)
}

// recalcCart は明細から集計を引き直す。
// total_products = 明細数、final_price = スナップショット価格の合計。
// 呼び出し元のトランザクション内で明細変更と一緒に永続化される
func (u *CartUsecase) recalcCart(ctx context.Context, r repo.TxRepos, cartID int64) error {
	items, err := r.CartItems().ListByCartID(ctx, cartID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.FinalPrice)
	}

	if err := r.Carts().UpdateAggregates(ctx, cartID, int64(len(items)), total); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// cartIDの明細をまとめてCartResponseを作る
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Slug:      p.Slug,
			Name:      p.Name,
			Price:     it.FinalPrice,
		})
	}

	return CartResponse{
		ID:            cart.ID,
		Items:         respItems,
		TotalProducts: cart.TotalProducts,
		FinalPrice:    cart.FinalPrice,
		InOrder:       cart.InOrder,
	}, nil
}
