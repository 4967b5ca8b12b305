package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

// Module loads configuration once for the whole app.
var Module = fx.Module("config",
	fx.Provide(Load),
)

// HTTPConfig controls the API listener.
type HTTPConfig struct {
	Addr string
}

// DatabaseConfig controls the sqlite connection.
type DatabaseConfig struct {
	DSN string
}

// MessagingConfig controls the outbound whatsapp bridge.
type MessagingConfig struct {
	AMQPURL  string
	Exchange string
	Queue    string
}

// PriceConfig holds per-meal unit prices in paise.
type PriceConfig struct {
	Breakfast int64 `yaml:"breakfast"`
	Lunch     int64 `yaml:"lunch"`
	Dinner    int64 `yaml:"dinner"`
}

// BillingConfig holds billing defaults.
type BillingConfig struct {
	DefaultStartDay int
}

// Config is the root application configuration.
type Config struct {
	Environment string
	HTTP        HTTPConfig
	Database    DatabaseConfig
	Messaging   MessagingConfig
	Billing     BillingConfig
	Prices      PriceConfig
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads configuration from the environment. A .env file is honored
// when present; a YAML price file referenced by PRICE_TABLE_FILE overrides
// the built-in meal prices.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment: getEnv("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DATABASE_DSN", "tiffintrack.db"),
		},
		Messaging: MessagingConfig{
			AMQPURL:  os.Getenv("AMQP_URL"),
			Exchange: getEnv("AMQP_EXCHANGE", "tiffintrack"),
			Queue:    getEnv("AMQP_QUEUE", "whatsapp.outbound"),
		},
		Billing: BillingConfig{
			DefaultStartDay: 1,
		},
		Prices: DefaultPrices(),
	}

	if raw := os.Getenv("BILLING_DEFAULT_START_DAY"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil || day < 1 || day > 31 {
			return Config{}, fmt.Errorf("invalid BILLING_DEFAULT_START_DAY %q", raw)
		}
		cfg.Billing.DefaultStartDay = day
	}

	if path := os.Getenv("PRICE_TABLE_FILE"); path != "" {
		prices, err := loadPriceFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Prices = prices
	}

	return cfg, nil
}

// DefaultPrices returns the built-in price table (₹20 / ₹50 / ₹60).
func DefaultPrices() PriceConfig {
	return PriceConfig{
		Breakfast: 2000,
		Lunch:     5000,
		Dinner:    6000,
	}
}

func loadPriceFile(path string) (PriceConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PriceConfig{}, fmt.Errorf("read price table: %w", err)
	}
	prices := DefaultPrices()
	if err := yaml.Unmarshal(raw, &prices); err != nil {
		return PriceConfig{}, fmt.Errorf("parse price table: %w", err)
	}
	if prices.Breakfast < 0 || prices.Lunch < 0 || prices.Dinner < 0 {
		return PriceConfig{}, fmt.Errorf("price table %s contains negative prices", path)
	}
	return prices, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
