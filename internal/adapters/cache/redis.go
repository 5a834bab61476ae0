// Package cache implements ports.Cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const serviceName = "cache"

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache stores values as plain Redis strings.
type RedisCache struct {
	client *redis.Client
}

var _ ports.Cache = (*RedisCache)(nil)

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewNotFoundError("cache entry", key)
	}
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return value, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	ttl := time.Duration(ttlSeconds) * time.Second
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return domain.NewUnavailableError(serviceName, err.Error())
	}

	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return domain.NewUnavailableError(serviceName, err.Error())
	}

	return nil
}

// Name implements ports.HealthChecker.
func (c *RedisCache) Name() string {
	return serviceName
}

// Check implements ports.HealthChecker.
func (c *RedisCache) Check(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
