package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var keys = []string{
	"APP_ENV", "LOG_LEVEL", "HTTP_PORT", "CORS_ORIGINS", "DATABASE_URL", "RUN_MIGRATIONS",
	"KV_BACKEND", "REDIS_URL", "JWT_SECRET", "CURRENCY", "DELIVERY_FEE",
	"CARRIER_ID", "CHECKOUT_TIMEOUT",
}

// clearEnv blanks every key for the test; empty values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, config.KVBackendPostgres, cfg.KVBackend)
	assert.Equal(t, currency.MustParseISO("INR"), cfg.Currency)
	assert.True(t, decimal.NewFromInt(100).Equal(cfg.DeliveryFee))
	assert.Equal(t, int64(1), cfg.CarrierID)
	assert.Equal(t, 15*time.Second, cfg.CheckoutTimeout)
	assert.False(t, cfg.RunMigrations)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, blank or not
	for _, k := range []string{"KV_BACKEND", "JWT_SECRET", "CURRENCY", "DELIVERY_FEE"} {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range []string{"KV_BACKEND", "JWT_SECRET", "CURRENCY", "DELIVERY_FEE"} {
			_ = os.Unsetenv(k)
		}
	})
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, ,https://admin.example.com")

	path := filepath.Join(t.TempDir(), ".env")
	content := "KV_BACKEND=redis\nJWT_SECRET=from-file\nCURRENCY=USD\nDELIVERY_FEE=4.99\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.KVBackendRedis, cfg.KVBackend)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, currency.USD, cfg.Currency)
	assert.True(t, decimal.RequireFromString("4.99").Equal(cfg.DeliveryFee))
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantError string
	}{
		{
			name:      "missing secret: error",
			env:       map[string]string{},
			wantError: "JWT_SECRET is required",
		},
		{
			name:      "bad port: error",
			env:       map[string]string{"HTTP_PORT": "eighty"},
			wantError: "HTTP_PORT[eighty] is not an integer",
		},
		{
			name:      "bad currency: error",
			env:       map[string]string{"CURRENCY": "RUPEE"},
			wantError: "CURRENCY[RUPEE] is not a valid ISO currency",
		},
		{
			name:      "bad timeout: error",
			env:       map[string]string{"CHECKOUT_TIMEOUT": "soon"},
			wantError: "CHECKOUT_TIMEOUT[soon] is not a duration",
		},
		{
			name:      "negative fee: error",
			env:       map[string]string{"DELIVERY_FEE": "-1"},
			wantError: "DELIVERY_FEE[-1] is negative",
		},
		{
			name:      "unknown backend: error",
			env:       map[string]string{"KV_BACKEND": "memcached"},
			wantError: "KV_BACKEND[memcached] must be redis or postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, ok := tt.env["JWT_SECRET"]; !ok && tt.name != "missing secret: error" {
				t.Setenv("JWT_SECRET", "s3cret")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			require.ErrorContains(t, err, tt.wantError)
		})
	}
}
