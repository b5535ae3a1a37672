package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("TAX_RATE", "")

	cfg := Load()

	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.08")))
	assert.True(t, cfg.DefaultCommission.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 60, cfg.RateLimit)
}

func TestLoadFallsBackOnGarbage(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "forever")
	t.Setenv("RATE_LIMIT", "-5")
	t.Setenv("SHIPPING_FEE", "free")

	cfg := Load()

	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.True(t, cfg.ShippingFee.Equal(decimal.NewFromInt(25)))
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
