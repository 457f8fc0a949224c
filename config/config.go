package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, Postgres connection details, upstream market-data access
// and the quote cache tuning knobs.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=nsepulse
//	POSTGRES_SSLMODE=disable
//	UPSTREAM_BASE_URL=https://query1.finance.yahoo.com
//	MARKET_EXCHANGE_SUFFIX=.NS
//	MARKET_INDEX_ALIAS=NIFTY50
//	MARKET_INDEX_SYMBOL=^NSEI
//	QUOTE_TTL_SECONDS=60
//	QUOTE_FETCH_TIMEOUT_SECONDS=10
//	QUOTE_MAX_CONCURRENT=10
//	JWT_SECRET=change-me
//	JWT_EXPIRY_MINUTES=1440
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Upstream UpstreamConfig // Market-data provider access
	Market   MarketConfig   // Exchange/index symbol rules and cache tuning
	JWT      JWTConfig      // Token signing settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// UpstreamConfig defines access to the third-party market-data provider.
type UpstreamConfig struct {
	BaseURL string        // Chart API base URL (Yahoo v8 compatible)
	Timeout time.Duration // Hard cap on a single upstream HTTP call
}

// MarketConfig defines the symbol rules of the configured market and the
// tuning of the bulk quote cache.
//
// Fields:
//   - ExchangeSuffix: suffix appended to domestic tickers (e.g., ".NS").
//   - IndexAlias: user-facing alias of the domestic index (e.g., "NIFTY50").
//   - IndexSymbol: upstream symbol of that index (e.g., "^NSEI").
//   - QuoteTTL: cache-wide freshness window for bulk quotes.
//   - FetchTimeout: default wall-clock bound for a bulk refill.
//   - MaxConcurrent: cap on simultaneous in-flight upstream fetches.
type MarketConfig struct {
	ExchangeSuffix string
	IndexAlias     string
	IndexSymbol    string
	QuoteTTL       time.Duration
	FetchTimeout   time.Duration
	MaxConcurrent  int
}

// JWTConfig defines token signing settings for the auth layer.
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "nsepulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("UPSTREAM_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)

	viper.SetDefault("MARKET_EXCHANGE_SUFFIX", ".NS")
	viper.SetDefault("MARKET_INDEX_ALIAS", "NIFTY50")
	viper.SetDefault("MARKET_INDEX_SYMBOL", "^NSEI")
	viper.SetDefault("QUOTE_TTL_SECONDS", 60)
	viper.SetDefault("QUOTE_FETCH_TIMEOUT_SECONDS", 10)
	viper.SetDefault("QUOTE_MAX_CONCURRENT", 10)

	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 1440)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Market: MarketConfig{
			ExchangeSuffix: viper.GetString("MARKET_EXCHANGE_SUFFIX"),
			IndexAlias:     viper.GetString("MARKET_INDEX_ALIAS"),
			IndexSymbol:    viper.GetString("MARKET_INDEX_SYMBOL"),
			QuoteTTL:       time.Duration(viper.GetInt("QUOTE_TTL_SECONDS")) * time.Second,
			FetchTimeout:   time.Duration(viper.GetInt("QUOTE_FETCH_TIMEOUT_SECONDS")) * time.Second,
			MaxConcurrent:  viper.GetInt("QUOTE_MAX_CONCURRENT"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: time.Duration(viper.GetInt("JWT_EXPIRY_MINUTES")) * time.Minute,
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Upstream.BaseURL == "" {
		missing = append(missing, "UPSTREAM_BASE_URL")
	}
	if AppConfig.Market.ExchangeSuffix == "" {
		missing = append(missing, "MARKET_EXCHANGE_SUFFIX")
	}
	if AppConfig.Market.QuoteTTL <= 0 {
		missing = append(missing, "QUOTE_TTL_SECONDS")
	}
	if AppConfig.Market.MaxConcurrent <= 0 {
		missing = append(missing, "QUOTE_MAX_CONCURRENT")
	}
	if AppConfig.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
