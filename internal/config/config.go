package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port     int    `mapstructure:"PORT"`
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Database: an SQLite file path, or a postgres:// URL
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Business
	RestaurantName string `mapstructure:"RESTAURANT_NAME"`
	// Timezone used to bucket orders into days/weeks/months ("Local" or an IANA name)
	Timezone string `mapstructure:"TIMEZONE"`

	// Exports
	ReceiptLogPath   string `mapstructure:"RECEIPT_LOG_PATH"`
	ReceiptPDFPath   string `mapstructure:"RECEIPT_PDF_PATH"`
	ReportExportPath string `mapstructure:"REPORT_EXPORT_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "db/restaurant.db")
	viper.SetDefault("RESTAURANT_NAME", "Restaurant Billing")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("RECEIPT_LOG_PATH", "data/sample_bills.json")
	viper.SetDefault("RECEIPT_PDF_PATH", "data/receipts")
	viper.SetDefault("REPORT_EXPORT_PATH", "data/sales_report.csv")

	// Optional .env file for local development; a missing file is fine
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves Timezone; an empty value or "Local" means the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
