package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	KVBackendSQLite = "sqlite"
	KVBackendRedis  = "redis"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR,default=:8080"`
	DBPath   string `env:"DB_PATH,default=./taskboard.db"`

	KVBackend     string `env:"KV_BACKEND,default=sqlite"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB,default=0"`
	RedisPrefix   string `env:"REDIS_PREFIX"`

	AIBaseURL   string        `env:"AI_BASE_URL"`
	AIAccountID string        `env:"AI_ACCOUNT_ID"`
	AIAPIToken  string        `env:"AI_API_TOKEN"`
	AIModel     string        `env:"AI_MODEL"`
	AITimeout   time.Duration `env:"AI_TIMEOUT,default=0s"`

	// Empty means no asset tree; non-API requests then fail with 500.
	AssetsDir string `env:"ASSETS_DIR"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS,default=0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST,default=10"`
}

// Load reads envFile (if it exists) into the process environment and
// decodes the environment into a Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.KVBackend {
	case KVBackendSQLite:
	case KVBackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("KV_BACKEND=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", c.KVBackend)
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}
	return nil
}
