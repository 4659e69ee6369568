// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is the runtime configuration of the shopfront service
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Security SecurityConfig
	Shipping ShippingConfig
	Logging  LoggingConfig
}

// AppConfig names the service and the company printed on invoices
type AppConfig struct {
	Name        string
	Version     string
	Environment string

	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyWebsite string
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// RedisConfig backs the rate limiter. An empty host disables Redis.
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// AdminConfig holds the single dashboard credential
type AdminConfig struct {
	Email        string
	PasswordHash string
}

type SecurityConfig struct {
	BcryptCost         int
	RateLimitPerMinute int
	RateLimitBurst     int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// ShippingConfig contains the checkout shipping rates
type ShippingConfig struct {
	FlatRate      decimal.Decimal
	FreeThreshold decimal.Decimal
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
// Malformed values are reported together instead of falling back to defaults.
func FromEnv() (*Config, error) {
	env := &envReader{}

	cfg := &Config{
		App: AppConfig{
			Name:           env.str("APP_NAME", "Shopfront"),
			Version:        env.str("APP_VERSION", "1.0.0"),
			Environment:    env.str("APP_ENV", "development"),
			CompanyName:    env.str("COMPANY_NAME", "Shopfront Inc."),
			CompanyAddress: env.str("COMPANY_ADDRESS", "100 Market Street, San Francisco, CA"),
			CompanyPhone:   env.str("COMPANY_PHONE", "+1 415 555 0100"),
			CompanyEmail:   env.str("COMPANY_EMAIL", "support@shopfront.example"),
			CompanyWebsite: env.str("COMPANY_WEBSITE", "https://shopfront.example"),
		},
		Server: ServerConfig{
			Port:           env.str("APP_PORT", "8080"),
			ReadTimeout:    env.duration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   env.duration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    env.duration("SERVER_IDLE_TIMEOUT", time.Minute),
			RequestTimeout: env.duration("SERVER_REQUEST_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Host:         env.str("REDIS_HOST", ""),
			Port:         env.str("REDIS_PORT", "6379"),
			Password:     env.str("REDIS_PASSWORD", ""),
			DB:           env.int("REDIS_DB", 0),
			PoolSize:     env.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: env.int("REDIS_MIN_IDLE_CONNS", 2),
		},
		JWT: JWTConfig{
			Secret:            env.str("JWT_SECRET", ""),
			AccessTokenExpiry: env.duration("JWT_ACCESS_EXPIRE", 12*time.Hour),
		},
		Admin: AdminConfig{
			Email:        strings.ToLower(env.str("ADMIN_EMAIL", "admin@shopfront.example")),
			PasswordHash: env.str("ADMIN_PASSWORD_HASH", ""),
		},
		Security: SecurityConfig{
			BcryptCost:         env.int("BCRYPT_COST", 12),
			RateLimitPerMinute: env.int("RATE_LIMIT_PER_MINUTE", 120),
			RateLimitBurst:     env.int("RATE_LIMIT_BURST", 30),
			CORSAllowedOrigins: env.list("CORS_ALLOWED_ORIGINS", "http://localhost:3000", "http://localhost:8081"),
			CORSAllowedMethods: env.list("CORS_ALLOWED_METHODS", "GET", "POST", "PUT", "DELETE", "OPTIONS"),
			CORSAllowedHeaders: env.list("CORS_ALLOWED_HEADERS", "Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"),
			TrustedProxies:     env.list("TRUSTED_PROXIES"),
		},
		Shipping: ShippingConfig{
			FlatRate:      env.money("SHIPPING_FLAT_RATE", "9.99"),
			FreeThreshold: env.money("SHIPPING_FREE_THRESHOLD", "100"),
		},
		Logging: LoggingConfig{
			Level:  env.str("LOG_LEVEL", "info"),
			Format: env.str("LOG_FORMAT", "json"),
		},
	}

	if err := errors.Join(env.errs...); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks cross-field rules that parsing alone cannot catch
func (c *Config) Validate() error {
	switch {
	case len(c.JWT.Secret) < 32:
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	case c.Server.Port == "":
		return fmt.Errorf("APP_PORT is required")
	case c.Shipping.FlatRate.IsNegative():
		return fmt.Errorf("SHIPPING_FLAT_RATE cannot be negative")
	case c.Shipping.FreeThreshold.IsNegative():
		return fmt.Errorf("SHIPPING_FREE_THRESHOLD cannot be negative")
	case c.IsProduction() && c.Admin.PasswordHash == "":
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required in production")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// RedisEnabled reports whether a Redis host is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// GetRedisAddr returns host:port for the Redis client
func (c *Config) GetRedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// envReader looks up variables and remembers every value it failed to parse
type envReader struct {
	errs []error
}

func (r *envReader) lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

func (r *envReader) fail(key, kind string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s must be %s: %w", key, kind, err))
}

func (r *envReader) str(key, fallback string) string {
	if value, ok := r.lookup(key); ok {
		return value
	}
	return fallback
}

func (r *envReader) int(key string, fallback int) int {
	value, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		r.fail(key, "an integer", err)
		return fallback
	}
	return n
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	value, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		r.fail(key, "a duration", err)
		return fallback
	}
	return d
}

// list splits a comma separated value, dropping blank entries
func (r *envReader) list(key string, fallback ...string) []string {
	value, ok := r.lookup(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *envReader) money(key, fallback string) decimal.Decimal {
	value := r.str(key, fallback)
	d, err := decimal.NewFromString(value)
	if err != nil {
		r.fail(key, "a decimal amount", err)
		return decimal.Zero
	}
	return d
}
