package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Catalog  CatalogConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type PricingConfig struct {
	// CurrencyCode is the ISO 4217 store currency.
	CurrencyCode string
	// InstallmentMinTotal is the minimum total qualifying for installment
	// payment, as a decimal string in the store currency.
	InstallmentMinTotal string
	// InstallmentMonths is the fixed number of monthly installments.
	InstallmentMonths int
	// DiscountRulesPath points to an optional YAML discount rule pack.
	// Empty means no discount rules, i.e. discount is always zero.
	DiscountRulesPath string
}

type CatalogConfig struct {
	// DeliveryOptionsPath points to an optional YAML delivery catalog.
	// Empty means the built-in catalog is used.
	DeliveryOptionsPath string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Pricing: PricingConfig{
			CurrencyCode:        getEnv("CURRENCY", "DZD"),
			InstallmentMinTotal: getEnv("INSTALLMENT_MIN_TOTAL", "30000"),
			InstallmentMonths:   getEnvAsInt("INSTALLMENT_MONTHS", 12),
			DiscountRulesPath:   getEnv("DISCOUNT_RULES_PATH", ""),
		},
		Catalog: CatalogConfig{
			DeliveryOptionsPath: getEnv("DELIVERY_OPTIONS_PATH", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if _, err := currency.ParseISO(c.Pricing.CurrencyCode); err != nil {
		return fmt.Errorf("invalid currency code %q: %w", c.Pricing.CurrencyCode, err)
	}

	minTotal, err := strconv.ParseFloat(c.Pricing.InstallmentMinTotal, 64)
	if err != nil {
		return fmt.Errorf("INSTALLMENT_MIN_TOTAL must be a decimal number: %w", err)
	}
	if minTotal < 0 {
		return fmt.Errorf("INSTALLMENT_MIN_TOTAL must not be negative")
	}

	if c.Pricing.InstallmentMonths < 1 {
		return fmt.Errorf("INSTALLMENT_MONTHS must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Currency parses the configured store currency. Validate must have
// succeeded first.
func (c *Config) Currency() currency.Unit {
	unit, err := currency.ParseISO(c.Pricing.CurrencyCode)
	if err != nil {
		panic(err)
	}
	return unit
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
