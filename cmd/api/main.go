package main

import (
	"crosstop/internal/config"
	"crosstop/internal/domain/model"
	"crosstop/internal/handler"
	"crosstop/internal/infra/db"
	infraRepo "crosstop/internal/infra/repository"
	"crosstop/internal/logger"
	"crosstop/internal/server"
	"crosstop/internal/usecase"
	"crosstop/internal/validator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.GoEnv == "development"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	// DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Category{},
		&model.Brand{},
		&model.Product{},
		&model.ProductImage{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	// Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// Usecase生成
	identityUc := usecase.NewIdentityUsecase(customerRepo, cartRepo, cartItemRepo)
	catalogUc := usecase.NewCatalogUsecase(productRepo, categoryRepo, brandRepo, cfg.PriceFilterMin, cfg.PriceFilterMax)
	cartUc := usecase.NewCartUsecase(txManager, productRepo, cartRepo, cartItemRepo)
	checkoutUc := usecase.NewCheckoutUsecase(txManager, orderRepo, validator.NewOrderValidator(), log)
	authUc := usecase.NewAuthUsecase(txManager, userRepo, cfg.JWTSecret, cfg.AccessTokenTTL)

	// Handler生成
	catalogH := handler.NewCatalogHandler(catalogUc, cartUc)
	cartH := handler.NewCartHandler(cartUc)
	checkoutH := handler.NewCheckoutHandler(checkoutUc, cartUc)
	authH := handler.NewAuthHandler(authUc)

	e := server.New(cfg, identityUc, log, catalogH, cartH, checkoutH, authH)

	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
