package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/luahn/gonggu-order-go/pkg/errors"
)

type Config struct {
	Feed     FeedConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Scraper  ScraperConfig
	Logging  LoggingConfig
	Bot      BotConfig
}

// FeedConfig points at the KakaoTalk bridge that streams comment events
// and accepts reply posts.
type FeedConfig struct {
	BaseURL string
	WSURL   string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type ScraperConfig struct {
	Enabled bool
	BaseURL string
}

type LoggingConfig struct {
	Level string
	File  string
}

type BotConfig struct {
	// ReplyEnabled turns automatic order-summary replies on or off.
	// Analysis still runs when disabled.
	ReplyEnabled bool
	ReplyTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Feed: FeedConfig{
			BaseURL: getEnv("FEED_BASE_URL", "http://localhost:3000"),
			WSURL:   getEnv("FEED_WS_URL", "ws://localhost:3000/ws"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "gonggu"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "gonggu_orders"),
		},
		Scraper: ScraperConfig{
			Enabled: getEnvBool("SCRAPER_ENABLED", false),
			BaseURL: getEnv("SCRAPER_BASE_URL", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "logs/server.log"),
		},
		Bot: BotConfig{
			ReplyEnabled: getEnvBool("BOT_REPLY_ENABLED", true),
			ReplyTimeout: time.Duration(getEnvInt("BOT_REPLY_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Feed.BaseURL == "" {
		return errors.NewValidationError("feed base URL is required", "FEED_BASE_URL", c.Feed.BaseURL)
	}
	if c.Feed.WSURL == "" {
		return errors.NewValidationError("feed WebSocket URL is required", "FEED_WS_URL", c.Feed.WSURL)
	}
	if c.Postgres.User == "" {
		return errors.NewValidationError("postgres user is required", "POSTGRES_USER", c.Postgres.User)
	}
	if c.Scraper.Enabled && c.Scraper.BaseURL == "" {
		return errors.NewValidationError("scraper base URL is required when the scraper is enabled", "SCRAPER_BASE_URL", c.Scraper.BaseURL)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
