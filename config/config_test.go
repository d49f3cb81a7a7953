package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		ServerPort:   "8080",
		DBHost:       "localhost",
		DBUser:       "costbook",
		DBName:       "costbook",
		JWTSecret:    "a-long-enough-test-secret",
		CurrencyCode: "COP",
		AWSRegion:    "us-east-1",
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, ValidateConfig(validTestConfig()))
}

func TestValidateConfigJWTSecret(t *testing.T) {
	cfg := validTestConfig()
	cfg.JWTSecret = ""
	assert.ErrorContains(t, ValidateConfig(cfg), "JWT_SECRET is required")

	cfg.JWTSecret = "short"
	assert.ErrorContains(t, ValidateConfig(cfg), "at least 16 characters")
}

func TestValidateConfigServerPort(t *testing.T) {
	cfg := validTestConfig()
	cfg.ServerPort = "not-a-port"
	assert.ErrorContains(t, ValidateConfig(cfg), "SERVER_PORT")
}

func TestValidateConfigCurrency(t *testing.T) {
	cfg := validTestConfig()
	cfg.CurrencyCode = "BREAD"
	assert.ErrorContains(t, ValidateConfig(cfg), "unknown currency code")

	cfg.CurrencyCode = "USD"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfigReceiptBucket(t *testing.T) {
	cfg := validTestConfig()
	cfg.ReceiptBucket = "receipts"
	cfg.AWSRegion = ""
	assert.ErrorContains(t, ValidateConfig(cfg), "AWS_REGION")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-long-enough-test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "COP", cfg.CurrencyCode)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigins)
	assert.Empty(t, cfg.ReceiptBucket)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-long-enough-test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CURRENCY_CODE", "USD")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadConfigRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
