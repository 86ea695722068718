package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr      = ":8080"
	defaultDatabaseURL   = "pgconnect.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTAccessTTL  = "24h"
	defaultGeminiModel   = "gemini-pro"
	defaultGeminiTimeout = "10s"
	defaultChatReqPerMin = "20"
	defaultChatBurst     = "5"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration

	// Assistant: hosted model call with a static knowledge-base fallback.
	// An empty key means the fallback path only, which is a supported mode.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	ChatReqPerMin int
	ChatBurst     int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	cfg.GeminiModel = strings.TrimSpace(getEnv("GEMINI_MODEL", defaultGeminiModel))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.GeminiTimeout, err = parseDurationEnv("GEMINI_TIMEOUT", defaultGeminiTimeout)
	if err != nil {
		return nil, err
	}
	cfg.ChatReqPerMin, err = parseIntEnv("CHAT_REQ_PER_MIN", defaultChatReqPerMin)
	if err != nil {
		return nil, err
	}
	cfg.ChatBurst, err = parseIntEnv("CHAT_BURST", defaultChatBurst)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.GeminiTimeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be > 0")
	}
	if cfg.ChatReqPerMin < 1 || cfg.ChatBurst < 1 {
		return fmt.Errorf("CHAT_REQ_PER_MIN and CHAT_BURST must be >= 1")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.DatabaseURL, defaultDatabaseURL) {
			return fmt.Errorf("in prod/release DATABASE_URL must point at PostgreSQL")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
