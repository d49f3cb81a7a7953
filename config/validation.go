package config

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
)

// ValidateConfig checks that all required configuration is present and
// well formed before the server boots.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric: %w", err)
	}

	if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
		return fmt.Errorf("database host, name and user are required")
	}

	if money.GetCurrency(cfg.CurrencyCode) == nil {
		return fmt.Errorf("unknown currency code %q", cfg.CurrencyCode)
	}

	if cfg.ReceiptBucket != "" && cfg.AWSRegion == "" {
		return fmt.Errorf("AWS_REGION is required when RECEIPT_BUCKET is set")
	}

	return nil
}
