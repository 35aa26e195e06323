package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	GoldAPIURL        string
	CatalogURL        string
	DatabaseURL       string
	HTTPPort          string
	HTTPClientTimeout time.Duration

	QuoteRefreshInterval time.Duration
	ReportInterval       time.Duration
	ReportPath           string

	SheetsSpreadsheetID   string
	SheetsCredentialsJSON string
}

// Load reads configuration from environment variables with sensible defaults.
// DATABASE_URL and the Sheets settings are optional: the engine runs without
// them, it just skips quote history and the sheet export.
func Load() Config {
	return Config{
		GoldAPIURL:            envOrDefault("GOLD_API_URL", "https://api.metals.live/v1/spot/gold"),
		CatalogURL:            envOrDefault("CATALOG_URL", "http://localhost:5090/api/products"),
		DatabaseURL:           envOrDefault("DATABASE_URL", ""),
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		HTTPClientTimeout:     envOrDefaultDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second),
		QuoteRefreshInterval:  envOrDefaultDuration("QUOTE_REFRESH_INTERVAL", 1*time.Hour),
		ReportInterval:        envOrDefaultDuration("REPORT_INTERVAL", 24*time.Hour),
		ReportPath:            envOrDefault("REPORT_PATH", "showcase_report.xlsx"),
		SheetsSpreadsheetID:   envOrDefault("SHEETS_SPREADSHEET_ID", ""),
		SheetsCredentialsJSON: envOrDefault("SHEETS_CREDENTIALS_JSON", ""),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
