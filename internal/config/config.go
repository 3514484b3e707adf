package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret      string        // JWT署名シークレット
	AccessTokenTTL time.Duration // アクセストークンの有効期間

	GoEnv string // development/production

	// 価格帯フィルタの補完値（環境変数で差し替え可能）
	PriceFilterMin decimal.Decimal
	PriceFilterMax decimal.Decimal
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	priceMin, err := mustDecimal("PRICE_FILTER_MIN", "0")
	if err != nil {
		return Config{}, err
	}
	priceMax, err := mustDecimal("PRICE_FILTER_MAX", "5000")
	if err != nil {
		return Config{}, err
	}
	if priceMin.GreaterThan(priceMax) {
		return Config{}, fmt.Errorf("PRICE_FILTER_MIN must be <= PRICE_FILTER_MAX")
	}

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		JWTSecret:      getenv("JWT_SECRET", "dev_secret_change_me"),
		AccessTokenTTL: 15 * time.Minute,
		GoEnv:          getenv("GO_ENV", "development"),
		PriceFilterMin: priceMin,
		PriceFilterMax: priceMax,
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func mustDecimal(key string, def string) (decimal.Decimal, error) {
	v := getenv(key, def)
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal number: %w", key, err)
	}
	return d, nil
}
