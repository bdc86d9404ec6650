package config

import (
	"fmt"
	"time"

	"movierental/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host          string `yaml:"host" env:"RENTALS_POSTGRES_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"RENTALS_POSTGRES_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"RENTALS_POSTGRES_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"RENTALS_POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `yaml:"database" env:"RENTALS_POSTGRES_DB" env-default:"rentals"`
	MinConn       int    `yaml:"min_conn" env:"RENTALS_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int    `yaml:"max_conn" env:"RENTALS_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsDir string `yaml:"migrations_dir" env:"RENTALS_POSTGRES_MIGRATIONS_DIR" env-default:"migrations/rentals"`

	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime" env:"RENTALS_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time" env:"RENTALS_POSTGRES_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"RENTALS_POSTGRES_HEALTH_CHECK_PERIOD" env-default:"1m"`
	PingTimeout       time.Duration `yaml:"ping_timeout" env:"RENTALS_POSTGRES_PING_TIMEOUT" env-default:"2s"`
}

// PoolOptions возвращает параметры пула соединений.
func (p *PostgresConfig) PoolOptions() postgres.PoolOptions {
	return postgres.PoolOptions{
		MinConns:          int32(p.MinConn),
		MaxConns:          int32(p.MaxConn),
		MaxConnLifetime:   p.MaxConnLifetime,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
		PingTimeout:       p.PingTimeout,
	}
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
