package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 注文フォームの入力
type OrderInput struct {
	FirstName      string
	LastName       string
	Phone          string
	Address        string
	BuyingType     string
	DeliveryChoice string
	Comment        string
}

// Usecaseは interface を依存注入
type OrderValidator interface {
	ValidateOrder(in OrderInput) error
}

type OrderOutput struct {
	ID             int64           `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Status         string          `json:"status"`
	BuyingType     string          `json:"buying_type"`
	DeliveryChoice string          `json:"delivery_choice"`
	Comment        string          `json:"comment"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CheckoutUsecase はアクティブカートを注文に変換して凍結する
type CheckoutUsecase struct {
	tx        repo.TransactionManager
	orderRepo repo.OrderRepository
	validator OrderValidator
	log       *zap.Logger
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	orderRepo repo.OrderRepository,
	validator OrderValidator,
	log *zap.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:        tx,
		orderRepo: orderRepo,
		validator: validator,
		log:       log,
	}
}

// SubmitOrder は注文作成とカート凍結を1トランザクションで行う。
// 途中失敗は全ロールバックして ErrCheckoutFailed を返す
func (u *CheckoutUsecase) SubmitOrder(ctx context.Context, rc RequestContext, in OrderInput) (OrderOutput, error) {
	if rc.Customer == nil {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}

	if err := u.validator.ValidateOrder(in); err != nil {
		return OrderOutput{}, err
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
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

		items, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		// 注文は提出時点の入力とカート合計のスナップショット
		cartID := cart.ID
		order, err := r.Orders().Create(ctx, model.Order{
			CustomerID:     rc.Customer.ID,
			FirstName:      in.FirstName,
			LastName:       in.LastName,
			Phone:          in.Phone,
			Address:        in.Address,
			Status:         model.OrderStatusNew,
			BuyingType:     model.BuyingType(in.BuyingType),
			DeliveryChoice: model.DeliveryChoice(in.DeliveryChoice),
			Comment:        in.Comment,
			CartID:         &cartID,
			FinalPrice:     cart.FinalPrice,
		})
		if err != nil {
			return err
		}

		// カート凍結（以降の追加・削除は拒否される）
		if err := r.Carts().MarkInOrder(ctx, cart.ID); err != nil {
			return err
		}

		out = toOrderOutput(order)
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return OrderOutput{}, err
		}
		if errors.Is(err, ErrCartFrozen) {
			return OrderOutput{}, err
		}
		u.log.Error("checkout rolled back", zap.Int64("cart_id", rc.Cart.ID), zap.Error(err))
		return OrderOutput{}, ErrCheckoutFailed
	}

	u.log.Info("order placed",
		zap.Int64("order_id", out.ID),
		zap.Int64("customer_id", rc.Customer.ID),
		zap.String("final_price", out.FinalPrice.String()),
	)
	return out, nil
}

// ListOrders は購入者の注文履歴（プロフィール画面）
func (u *CheckoutUsecase) ListOrders(ctx context.Context, rc RequestContext) ([]OrderOutput, error) {
	if rc.Customer == nil {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}

	orders, err := u.orderRepo.ListByCustomerID(ctx, rc.Customer.ID)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return outs, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		ID:             o.ID,
		FirstName:      o.FirstName,
		LastName:       o.LastName,
		Phone:          o.Phone,
		Address:        o.Address,
		Status:         string(o.Status),
		BuyingType:     string(o.BuyingType),
		DeliveryChoice: string(o.DeliveryChoice),
		Comment:        o.Comment,
		FinalPrice:     o.FinalPrice,
		CreatedAt:      o.CreatedAt,
	}
}
