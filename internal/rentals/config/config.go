// Package config содержит конфигурацию для сервиса проката.
package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	pkgconfig "movierental/pkg/config"
	"movierental/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName = "rentals"

	EnvConfigPath = "RENTALS_CONFIG_PATH"

	LogConfigLoaded     = "Configuration loaded successfully"
	ErrFailedLoadConfig = "Failed to load configuration"
)

// Config представляет полную конфигурацию сервиса проката.
type Config struct {
	Postgres  PostgresConfig  `yaml:"postgres"`
	HTTP      HTTPConfig      `yaml:"http"`
	Redis     RedisConfig     `yaml:"redis"`
	Logging   LoggingConfig   `yaml:"logging"`
	Shutdown  ShutdownConfig  `yaml:"shutdown"`
	Rentals   RentalsConfig   `yaml:"rentals"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// Load загружает конфигурацию из файла RENTALS_CONFIG_PATH, если он задан,
// и из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.Duration("rental_period", cfg.Rentals.Period),
		zap.String("overdue_schedule", cfg.Scheduler.OverdueSpec))

	return cfg, nil
}
