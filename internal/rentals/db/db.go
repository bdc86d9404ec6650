// Package db инициализирует базу данных сервиса проката.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"movierental/internal/rentals/config"
	"movierental/pkg/db/postgres"
	"movierental/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing rentals database"
	LogDBInitialized     = "rentals database initialized successfully"
	LogMigrationStarting = "starting database migrations for rentals service"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations = "failed to apply rentals database migrations"
	ErrDBConnection = "failed to connect to rentals database"
	ErrGetPath      = "failed to get path"
)

// DB представляет соединение с базой данных сервиса проката.
type DB struct {
	database *postgres.Database
}

// New применяет миграции из migrationsDir и открывает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	migrationsPath, err := sourceURL(migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ErrDBMigrations, ErrGetPath, err)
	}

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	version, err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.PoolOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized, zap.Uint("schema_version", version))

	return &DB{database: database}, nil
}

func sourceURL(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return "file://" + dir, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}
