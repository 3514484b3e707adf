package server

import (
	"crosstop/internal/config"
	"crosstop/internal/handler"
	mw "crosstop/internal/middleware"
	"crosstop/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// New はルーティングとミドルウェアを組んだechoを返す。
// カート解決は全ルート共通の前段として動く
func New(
	cfg config.Config,
	identity *usecase.IdentityUsecase,
	log *zap.Logger,
	catalogH *handler.CatalogHandler,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
	authH *handler.AuthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(mw.AuthOptional(cfg))
	e.Use(mw.CartContext(identity, log))

	catalogH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	checkoutH.RegisterRoutes(e)
	authH.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
