package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort              = "8080"
	DefaultMigrationsPath    = "file://migrations"
	DefaultTreasuryAPIURL    = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/v1/accounting/od/rates_of_exchange"
	DefaultTreasuryTimeout   = 10 * time.Second
	DefaultRateLimit         = "100-M"
	DefaultCORSAllowedOrigin = "*"
	DefaultLogLevel          = "info"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      slog.Level
	DatabaseURL   string
	EnableDBCheck bool
	// MigrationsPath is a golang-migrate source URL, e.g. file://migrations.
	MigrationsPath string

	TreasuryAPIURL  string
	TreasuryTimeout time.Duration

	// JWTSecret enables bearer auth on purchase routes when non-empty.
	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimit          string
}

// UsesDatabase reports whether purchases are persisted in PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", DefaultMigrationsPath)
	v.SetDefault("TREASURY_API_URL", DefaultTreasuryAPIURL)
	v.SetDefault("TREASURY_API_TIMEOUT", DefaultTreasuryTimeout.String())
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", DefaultCORSAllowedOrigin)
	v.SetDefault("RATE_LIMIT", DefaultRateLimit)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		TreasuryAPIURL: strings.TrimSpace(v.GetString("TREASURY_API_URL")),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL not set, purchases will be kept in memory only")
	}
	if cfg.TreasuryAPIURL == "" {
		return nil, fmt.Errorf("TREASURY_API_URL must not be empty")
	}

	timeoutStr := v.GetString("TREASURY_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid TREASURY_API_TIMEOUT %q: must be a positive duration", timeoutStr)
	}
	cfg.TreasuryTimeout = timeout

	level, err := parseLogLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.JWTSecret == "" && cfg.IsProduction {
		slog.Warn("JWT_SECRET not set in production, purchase routes are unauthenticated")
	}

	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
