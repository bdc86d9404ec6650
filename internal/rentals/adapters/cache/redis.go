// Package cache содержит реализацию кэширования с использованием Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"movierental/internal/rentals/config"
	"movierental/internal/rentals/ports/cache"
	pkgredis "movierental/pkg/db/redis"
	"movierental/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet    = "get"
	LogMethodSet    = "set"
	LogMethodDelete = "delete"

	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToGet     = "failed to get value from redis"
	ErrorFailedToSet     = "failed to set value in redis"
	ErrorFailedToDelete  = "failed to delete value from redis"
	ErrorFailedToClose   = "failed to close redis connection"
)

// RedisCache реализует интерфейс Cache с использованием Redis.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// New подключается к Redis по настройкам сервиса.
func New(ctx context.Context, cfg *config.RedisConfig) (cache.Cache, error) {
	client, err := pkgredis.NewClient(ctx, cfg.ClientConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}
	return NewRedisCache(client, cfg.RentalTTL), nil
}

// NewRedisCache оборачивает готовый клиент. defaultTTL используется,
// когда Set вызывается с нулевым ttl.
func NewRedisCache(client *redis.Client, defaultTTL time.Duration) cache.Cache {
	return &RedisCache{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// Get получает значение по ключу.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", key))

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set устанавливает значение для ключа с временем жизни.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("key", key))

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Delete удаляет значения по ключам.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	log := logger.Log(ctx).With(zap.String("method", LogMethodDelete), zap.Strings("keys", keys))

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
