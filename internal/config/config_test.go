package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.RedisEnabled())
	assert.True(t, cfg.Shipping.FlatRate.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, cfg.Shipping.FreeThreshold.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("SHIPPING_FLAT_RATE", "4.99")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "3s")
	t.Setenv("ADMIN_EMAIL", "Ops@Example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example, ,https://b.example ")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.True(t, cfg.Shipping.FlatRate.Equal(decimal.RequireFromString("4.99")))
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "ops@example.com", cfg.Admin.Email)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
}

func TestFromEnvValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "ShortSecret",
			env:  map[string]string{"JWT_SECRET": "short"},
			want: "JWT_SECRET",
		},
		{
			name: "MalformedShipping",
			env:  map[string]string{"JWT_SECRET": testSecret, "SHIPPING_FLAT_RATE": "cheap"},
			want: "SHIPPING_FLAT_RATE",
		},
		{
			name: "MalformedInt",
			env:  map[string]string{"JWT_SECRET": testSecret, "BCRYPT_COST": "twelve"},
			want: "BCRYPT_COST must be an integer",
		},
		{
			name: "MalformedDuration",
			env:  map[string]string{"JWT_SECRET": testSecret, "SERVER_REQUEST_TIMEOUT": "soon"},
			want: "SERVER_REQUEST_TIMEOUT",
		},
		{
			name: "NegativeThreshold",
			env:  map[string]string{"JWT_SECRET": testSecret, "SHIPPING_FREE_THRESHOLD": "-1"},
			want: "SHIPPING_FREE_THRESHOLD",
		},
		{
			name: "ProductionNeedsAdminHash",
			env:  map[string]string{"JWT_SECRET": testSecret, "APP_ENV": "production"},
			want: "ADMIN_PASSWORD_HASH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
