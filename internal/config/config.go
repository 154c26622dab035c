package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type MarketDataConfig struct {
	BaseURL  string
	CacheTTL time.Duration
}

type SchedulerConfig struct {
	QuoteRefreshInterval time.Duration
}

type LogConfig struct {
	Level string
}

type AppConfig struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	MarketData MarketDataConfig
	Scheduler  SchedulerConfig
	Log        LogConfig
}

func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("DATABASE_DSN", "data/journal.db")
	viper.SetDefault("JWT_TOKEN_TTL", "24h")
	viper.SetDefault("MARKET_DATA_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("QUOTE_CACHE_TTL", "60s")
	viper.SetDefault("QUOTE_REFRESH_INTERVAL", "5m")
	viper.SetDefault("LOG_LEVEL", "info")

	tokenTTL, err := time.ParseDuration(viper.GetString("JWT_TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid jwt token ttl: %w", err)
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("QUOTE_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid quote cache ttl: %w", err)
	}

	refreshInterval, err := time.ParseDuration(viper.GetString("QUOTE_REFRESH_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid quote refresh interval: %w", err)
	}

	cfg := &AppConfig{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			DSN: viper.GetString("DATABASE_DSN"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		MarketData: MarketDataConfig{
			BaseURL:  viper.GetString("MARKET_DATA_URL"),
			CacheTTL: cacheTTL,
		},
		Scheduler: SchedulerConfig{
			QuoteRefreshInterval: refreshInterval,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
