package cache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Type string

const (
	Redis Type = "redis"
	LRU   Type = "lru"
	None  Type = "none"
)

const (
	defaultTTL  = 5 * time.Minute
	defaultSize = 1024
)

type Config struct {
	Type
	TTL   time.Duration
	Size  int
	Redis RedisConfig
}

func LoadEnv() (*Config, error) {
	cfg := &Config{Type: Type(os.Getenv("CACHE_TYPE")), TTL: defaultTTL, Size: defaultSize}
	if cfg.Type == "" {
		cfg.Type = LRU
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid CACHE_TTL %q", v)
		}
		cfg.TTL = ttl
	}
	if v := os.Getenv("CACHE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid CACHE_SIZE %q", v)
		}
		cfg.Size = size
	}

	switch cfg.Type {
	case Redis:
		cfg.Redis = RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWD"),
			TTL:      cfg.TTL,
		}
		if cfg.Redis.Host == "" || cfg.Redis.Port == "" {
			return nil, fmt.Errorf("REDIS_HOST and REDIS_PORT must be set when CACHE_TYPE=redis")
		}
	case LRU, None:
	default:
		slog.Error("Invalid CACHE_TYPE environment variable value", "value", cfg.Type)
		return nil, fmt.Errorf("invalid CACHE_TYPE %q, expected one of %v", cfg.Type, []Type{Redis, LRU, None})
	}
	return cfg, nil
}

// New builds the configured cache. The returned close func is never nil.
func New(ctx context.Context, cfg *Config) (Cache, func(), error) {
	switch cfg.Type {
	case Redis:
		c, err := NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Close() }, nil
	case LRU:
		return NewLRUCache(cfg.Size, cfg.TTL), func() {}, nil
	default:
		return NoopCache{}, func() {}, nil
	}
}
