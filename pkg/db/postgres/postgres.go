// Package postgres открывает пул соединений pgx и применяет миграции.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"movierental/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogConnecting = "connecting to Postgres database"
	LogConnected  = "successfully connected to Postgres"
	LogClosing    = "closing Postgres connection pool"
)

// Константы для сообщений об ошибках.
const (
	ErrParseConfig  = "failed to parse connection config"
	ErrCreatePool   = "failed to create connection pool"
	ErrPingDatabase = "failed to ping database"
	ErrPoolSize     = "invalid pool size"
)

// PoolOptions задает размер пула и время жизни соединений.
// Нулевые длительности оставляют значения pgxpool по умолчанию.
type PoolOptions struct {
	MinConns          int32
	MaxConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	PingTimeout       time.Duration
}

// Database представляет соединение с Postgres.
type Database struct {
	pool        *pgxpool.Pool
	pingTimeout time.Duration
}

// New открывает пул по dsn и проверяет его командой ping.
func New(ctx context.Context, dsn string, opts PoolOptions) (*Database, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogConnecting,
		zap.Int32("min_conns", opts.MinConns),
		zap.Int32("max_conns", opts.MaxConns))

	if opts.MaxConns > 0 && opts.MinConns > opts.MaxConns {
		return nil, fmt.Errorf("%s: min %d > max %d", ErrPoolSize, opts.MinConns, opts.MaxConns)
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error(ctx, ErrParseConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrParseConfig, err)
	}
	applyPoolOptions(poolCfg, opts)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error(ctx, ErrCreatePool, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreatePool, err)
	}

	db := &Database{pool: pool, pingTimeout: opts.PingTimeout}
	if err := db.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, ErrPingDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPingDatabase, err)
	}

	log.Info(ctx, LogConnected)
	return db, nil
}

func applyPoolOptions(cfg *pgxpool.Config, opts PoolOptions) {
	if opts.MinConns > 0 {
		cfg.MinConns = opts.MinConns
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = opts.MaxConnLifetime
	}
	if opts.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = opts.MaxConnIdleTime
	}
	if opts.HealthCheckPeriod > 0 {
		cfg.HealthCheckPeriod = opts.HealthCheckPeriod
	}
}

// Pool возвращает пул соединений.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// Close закрывает пул соединений.
func (db *Database) Close(ctx context.Context) {
	logger.Log(ctx).Info(ctx, LogClosing)
	db.pool.Close()
}

// Ping проверяет доступность базы данных с учетом PingTimeout.
func (db *Database) Ping(ctx context.Context) error {
	if db.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.pingTimeout)
		defer cancel()
	}
	return db.pool.Ping(ctx)
}
