package handler

import (
	"net/http"

	"crosstop/internal/domain/model"
	"crosstop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutUc *usecase.CheckoutUsecase
	cartUc     *usecase.CartUsecase
}

func NewCheckoutHandler(checkoutUc *usecase.CheckoutUsecase, cartUc *usecase.CartUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUc: checkoutUc, cartUc: cartUc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/check-out/", h.checkoutForm)
	e.POST("/check-out/", h.submitOrder)
	e.GET("/profile/", h.profile)
}

type CheckoutRequest struct {
	FirstName      string `json:"first_name" form:"first_name"`
	LastName       string `json:"last_name" form:"last_name"`
	Phone          string `json:"phone" form:"phone"`
	Address        string `json:"address" form:"address"`
	BuyingType     string `json:"buying_type" form:"buying_type"`
	DeliveryChoice string `json:"delivery_choice" form:"delivery_choice"`
	Comment        string `json:"comment" form:"comment"`
}

type CheckoutFormResponse struct {
	Cart            usecase.CartResponse   `json:"cart"`
	BuyingTypes     []model.BuyingType     `json:"buying_types"`
	DeliveryChoices []model.DeliveryChoice `json:"delivery_choices"`
}

// フォーム描画に相当する情報（カートと選択肢）を返す
func (h *CheckoutHandler) checkoutForm(c echo.Context) error {
	rc, ok := getRequestContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	cart, err := h.cartUc.GetCart(c.Request().Context(), rc)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutFormResponse{
		Cart: cart,
		BuyingTypes: []model.BuyingType{
			model.BuyingTypeSelf,
			model.BuyingTypeDelivery,
		},
		DeliveryChoices: []model.DeliveryChoice{
			model.DeliveryNovaPoshta,
			model.DeliveryUkrPoshta,
			model.DeliveryIntime,
		},
	})
}

func (h *CheckoutHandler) submitOrder(c echo.Context) error {
	rc, ok := getRequestContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkoutUc.SubmitOrder(c.Request().Context(), rc, usecase.OrderInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		BuyingType:     req.BuyingType,
		DeliveryChoice: req.DeliveryChoice,
		Comment:        req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

// 注文履歴
func (h *CheckoutHandler) profile(c echo.Context) error {
	rc, ok := getRequestContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	out, err := h.checkoutUc.ListOrders(c.Request().Context(), rc)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
