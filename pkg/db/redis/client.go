package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"movierental/pkg/logger"
)

const (
	LogConnecting = "connecting to Redis"
	LogConnected  = "successfully connected to Redis"

	ErrConnect = "failed to connect to Redis"
)

// NewClient создает клиент Redis и проверяет соединение командой PING.
func NewClient(ctx context.Context, cfg *Config) (*redis.Client, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogConnecting, zap.String("address", cfg.Address()), zap.Int("db", cfg.DB))

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		log.Error(ctx, ErrConnect, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}

	log.Info(ctx, LogConnected)
	return rdb, nil
}
