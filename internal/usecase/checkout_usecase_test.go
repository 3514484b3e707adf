package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"crosstop/internal/domain/model"
	"crosstop/internal/usecase"
	"crosstop/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCheckoutTestEnv() (*memStore, *usecase.CartUsecase, *usecase.CheckoutUsecase) {
	s := newMemStore()
	cartUc := usecase.NewCartUsecase(
		&fakeTxManager{s: s},
		&fakeProductRepo{s: s},
		&fakeCartRepo{s: s},
		&fakeCartItemRepo{s: s},
	)
	checkoutUc := usecase.NewCheckoutUsecase(
		&fakeTxManager{s: s},
		&fakeOrderRepo{s: s},
		validator.NewOrderValidator(),
		zap.NewNop(),
	)
	return s, cartUc, checkoutUc
}

func validOrderInput() usecase.OrderInput {
	return usecase.OrderInput{
		FirstName:      "Taras",
		LastName:       "Shevchenko",
		Phone:          "+380501234567",
		Address:        "Kyiv, Khreshchatyk 1",
		BuyingType:     string(model.BuyingTypeDelivery),
		DeliveryChoice: string(model.DeliveryNovaPoshta),
	}
}

func TestSubmitOrder(t *testing.T) {
	s, cartUc, checkoutUc := newCheckoutTestEnv()
	s.addProduct("nike-af1", "Nike Air Force 1", "120.50", model.GenderMale, 1, 42)
	rc := authedContext(s)

	_, err := cartUc.AddToCart(context.Background(), rc, "nike-af1")
	require.NoError(t, err)

	out, err := checkoutUc.SubmitOrder(context.Background(), rc, validOrderInput())
	require.NoError(t, err)

	// 注文合計はカート合計のスナップショット
	assert.True(t, out.FinalPrice.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, string(model.OrderStatusNew), out.Status)

	// カートは凍結され、以降の変更は拒否される
	assert.True(t, s.carts[rc.Cart.ID].InOrder)
	_, err = cartUc.AddToCart(context.Background(), rc, "nike-af1")
	assert.ErrorIs(t, err, usecase.ErrCartFrozen)
}

func TestSubmitOrderRequiresLogin(t *testing.T) {
	s, _, checkoutUc := newCheckoutTestEnv()
	cart := model.Cart{ID: s.id(), SessionToken: "anon-token", ForAnonymousUser: true, FinalPrice: decimal.Zero}
	s.carts[cart.ID] = cart

	_, err := checkoutUc.SubmitOrder(context.Background(), usecase.RequestContext{Cart: cart}, validOrderInput())

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

// 欠けた項目はまとめて返る
func TestSubmitOrderValidation(t *testing.T) {
	s, _, checkoutUc := newCheckoutTestEnv()
	rc := authedContext(s)

	_, err := checkoutUc.SubmitOrder(context.Background(), rc, usecase.OrderInput{})

	ve, ok := usecase.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "first_name")
	assert.Contains(t, ve.Fields, "last_name")
	assert.Contains(t, ve.Fields, "phone")
	assert.Contains(t, ve.Fields, "buying_type")
	assert.Contains(t, ve.Fields, "delivery_choice")

	// 検証エラーでは何も作られない
	assert.Empty(t, s.orders)
	assert.False(t, s.carts[rc.Cart.ID].InOrder)
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	s, _, checkoutUc := newCheckoutTestEnv()
	rc := authedContext(s)

	_, err := checkoutUc.SubmitOrder(context.Background(), rc, validOrderInput())

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "cart empty", he.Message)
}

func TestSubmitOrderFrozenCart(t *testing.T) {
	s, cartUc, checkoutUc := newCheckoutTestEnv()
	s.addProduct("nike-af1", "Nike Air Force 1", "120.50", model.GenderMale, 1, 42)
	rc := authedContext(s)

	_, err := cartUc.AddToCart(context.Background(), rc, "nike-af1")
	require.NoError(t, err)

	_, err = checkoutUc.SubmitOrder(context.Background(), rc, validOrderInput())
	require.NoError(t, err)

	// 二重提出は凍結エラー
	_, err = checkoutUc.SubmitOrder(context.Background(), rc, validOrderInput())
	assert.ErrorIs(t, err, usecase.ErrCartFrozen)
	assert.Len(t, s.orders, 1)
}

// 途中失敗は全ロールバック。注文もカート凍結も残らない
func TestSubmitOrderRollsBackOnFailure(t *testing.T) {
	s, cartUc, checkoutUc := newCheckoutTestEnv()
	s.addProduct("nike-af1", "Nike Air Force 1", "120.50", model.GenderMale, 1, 42)
	rc := authedContext(s)

	_, err := cartUc.AddToCart(context.Background(), rc, "nike-af1")
	require.NoError(t, err)

	s.failOrderCreate = true
	_, err = checkoutUc.SubmitOrder(context.Background(), rc, validOrderInput())
	assert.ErrorIs(t, err, usecase.ErrCheckoutFailed)

	assert.Empty(t, s.orders)
	assert.False(t, s.carts[rc.Cart.ID].InOrder)
}

func TestListOrders(t *testing.T) {
	s, cartUc, checkoutUc := newCheckoutTestEnv()
	s.addProduct("nike-af1", "Nike Air Force 1", "120.50", model.GenderMale, 1, 42)
	rc := authedContext(s)

	_, err := cartUc.AddToCart(context.Background(), rc, "nike-af1")
	require.NoError(t, err)
	_, err = checkoutUc.SubmitOrder(context.Background(), rc, validOrderInput())
	require.NoError(t, err)

	// 他の購入者の注文は混ざらない
	other := authedContext(s)
	outs, err := checkoutUc.ListOrders(context.Background(), other)
	require.NoError(t, err)
	assert.Empty(t, outs)

	outs, err = checkoutUc.ListOrders(context.Background(), rc)
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, "Taras", outs[0].FirstName)
	assert.True(t, outs[0].FinalPrice.Equal(decimal.RequireFromString("120.50")))
}
