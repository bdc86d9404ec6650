package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// source
	"go.uber.org/zap"

	"movierental/pkg/logger"
)

// Константы сообщений миграций.
const (
	LogMigrationsApplied = "database migrations applied"
	LogMigrationsCurrent = "database schema is up to date"

	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
	ErrReadMigrationVersion    = "failed to read migration version"
	ErrDirtyMigration          = "database schema is dirty"
)

// MigrateDSN применяет все новые миграции из sourceURL и возвращает
// итоговую версию схемы. Версия 0 означает, что миграций нет.
func MigrateDSN(ctx context.Context, dsn string, sourceURL string) (uint, error) {
	log := logger.Log(ctx).With(zap.String("source", sourceURL))

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err))
		return 0, fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn(ctx, "failed to close migration instance", zap.NamedError("source_error", srcErr), zap.NamedError("db_error", dbErr))
		}
	}()

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		log.Error(ctx, ErrApplyMigrations, zap.Error(upErr))
		return 0, fmt.Errorf("%s: %w", ErrApplyMigrations, upErr)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		version = 0
	case err != nil:
		return 0, fmt.Errorf("%s: %w", ErrReadMigrationVersion, err)
	case dirty:
		return version, fmt.Errorf("%s: version %d", ErrDirtyMigration, version)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		log.Info(ctx, LogMigrationsCurrent, zap.Uint("version", version))
	} else {
		log.Info(ctx, LogMigrationsApplied, zap.Uint("version", version))
	}
	return version, nil
}
