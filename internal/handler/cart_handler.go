package handler

import (
	"net/http"

	"crosstop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カート閲覧と増減のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart/", h.getCart)
	e.GET("/add-to-cart/:slug", h.addToCart)
	e.GET("/delete-from-cart/:slug", h.deleteFromCart)
}

func (h *CartHandler) getCart(c echo.Context) error {
	rc, ok := getRequestContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), rc)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	rc, ok := getRequestContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), rc, c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteFromCart(c echo.Context) error {
	rc, ok := getRequestContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	out, err := h.uc.RemoveFromCart(c.Request().Context(), rc, c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
