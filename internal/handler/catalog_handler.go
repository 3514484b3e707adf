package handler

import (
	"errors"
	"net/http"
	"strconv"

	"crosstop/internal/domain/model"
	"crosstop/internal/middleware"
	"crosstop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: ve.Fields})
	}
	if errors.Is(err, usecase.ErrCartFrozen) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "cart already ordered"})
	}
	if errors.Is(err, usecase.ErrDuplicateUser) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "username already taken"})
	}
	if errors.Is(err, usecase.ErrCheckoutFailed) {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "checkout failed"})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	// 500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// middleware.CartContext が載せた RequestContext を取り出す
func getRequestContext(c echo.Context) (usecase.RequestContext, bool) {
	rc, ok := c.Get(middleware.CtxRequestContextKey).(usecase.RequestContext)
	return rc, ok
}

// カタログ閲覧の公開API
type CatalogHandler struct {
	catalogUc *usecase.CatalogUsecase
	cartUc    *usecase.CartUsecase
}

// DI
func NewCatalogHandler(catalogUc *usecase.CatalogUsecase, cartUc *usecase.CartUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUc: catalogUc, cartUc: cartUc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.home)
	e.GET("/products/:slug", h.productDetail)
	e.GET("/category/:slug", h.categoryDetail)
}

type HomeResponse struct {
	Products   []model.Product      `json:"products"`
	Categories []model.Category     `json:"categories"`
	Brands     []model.Brand        `json:"brands"`
	Cart       usecase.CartResponse `json:"cart"`
}

func (h *CatalogHandler) home(c echo.Context) error {
	rc, ok := getRequestContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	in, err := parseFilterInput(c)
	if err != nil {
		return writeError(c, err)
	}

	products, err := h.catalogUc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	categories, err := h.catalogUc.Categories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	brands, err := h.catalogUc.Brands(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	cart, err := h.cartUc.GetCart(c.Request().Context(), rc)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, HomeResponse{
		Products:   products,
		Categories: categories,
		Brands:     brands,
		Cart:       cart,
	})
}

func (h *CatalogHandler) productDetail(c echo.Context) error {
	out, err := h.catalogUc.GetProductDetail(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type CategoryResponse struct {
	Category model.Category  `json:"category"`
	Products []model.Product `json:"products"`
}

func (h *CatalogHandler) categoryDetail(c echo.Context) error {
	in, err := parseFilterInput(c)
	if err != nil {
		return writeError(c, err)
	}

	category, products, err := h.catalogUc.ListByCategory(c.Request().Context(), c.Param("slug"), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CategoryResponse{Category: category, Products: products})
}

// 一覧系のクエリパラメータを読む
func parseFilterInput(c echo.Context) (usecase.FilterInput, error) {
	in := usecase.FilterInput{
		Name:   c.QueryParam("name"),
		Gender: c.QueryParam("filter_by_gender"),
		Sort:   c.QueryParam("sort"),
	}

	if v := c.QueryParam("filter_by_brand"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return usecase.FilterInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid filter_by_brand")
		}
		in.BrandID = &id
	}

	if v := c.QueryParam("filter_by_size"); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return usecase.FilterInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid filter_by_size")
		}
		in.Size = &size
	}

	if v := c.QueryParam("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return usecase.FilterInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid min_price")
		}
		in.MinPrice = &d
	}

	if v := c.QueryParam("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return usecase.FilterInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid max_price")
		}
		in.MaxPrice = &d
	}

	return in, nil
}
