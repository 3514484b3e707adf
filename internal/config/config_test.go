package config_test

import (
	"testing"

	"crosstop/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.PriceFilterMin.Equal(decimal.Zero))
	assert.True(t, cfg.PriceFilterMax.Equal(decimal.NewFromInt(5000)))
}

func TestLoadPriceBounds(t *testing.T) {
	t.Setenv("PRICE_FILTER_MIN", "100")
	t.Setenv("PRICE_FILTER_MAX", "9999.99")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.PriceFilterMin.Equal(decimal.NewFromInt(100)))
	assert.True(t, cfg.PriceFilterMax.Equal(decimal.RequireFromString("9999.99")))
}

func TestLoadBadPriceBounds(t *testing.T) {
	t.Setenv("PRICE_FILTER_MIN", "100")
	t.Setenv("PRICE_FILTER_MAX", "50")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadInvalidDecimal(t *testing.T) {
	t.Setenv("PRICE_FILTER_MAX", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
