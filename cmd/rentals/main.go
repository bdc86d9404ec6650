package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"movierental/internal/rentals/adapters/cache"
	httpServer "movierental/internal/rentals/adapters/http"
	"movierental/internal/rentals/adapters/postgres"
	"movierental/internal/rentals/app"
	"movierental/internal/rentals/config"
	"movierental/internal/rentals/db"
	"movierental/internal/rentals/domain/services"
	cachePorts "movierental/internal/rentals/ports/cache"
	"movierental/internal/rentals/scheduler"
	"movierental/pkg/logger"
	"movierental/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "RENTALS_LOGGER_MODE"
	EnvLoggerLevel = "RENTALS_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartScheduler       = "failed to start overdue monitor"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "rentals service started"
	LogServiceShutdownDone = "rentals service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "rental cache disabled"
	LogInitServices        = "initializing services"
	LogInitScheduler       = "initializing overdue monitor"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogStoppingScheduler   = "stopping overdue monitor"
	LogClosingCache        = "closing Redis connection"
	LogClosingDatabase     = "closing database connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres, cfg.Postgres.MigrationsDir)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		repoFactory := postgres.NewRepositoryFactory(database.Pool(), cfg.Rentals.Period)
		rentalRepo := repoFactory.RentalRepository()

		var rentalCache cachePorts.Cache
		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache)
			rentalCache, err = cache.New(ctx, &cfg.Redis)
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
			rentalRepo = cache.NewRentalRepository(rentalRepo, rentalCache, cfg.Redis.RentalTTL)
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitServices)
		rentalUseCase := app.NewRentalUseCase(
			repoFactory.UserRepository(),
			repoFactory.MovieRepository(),
			rentalRepo,
			services.NewAgePolicy(nil),
		)

		var monitor *scheduler.OverdueMonitor
		if cfg.Scheduler.Enabled {
			log.Info(ctx, LogInitScheduler)
			monitor = scheduler.NewOverdueMonitor(rentalRepo, cfg.Scheduler.OverdueSpec, nil)
			if err := monitor.Start(ctx); err != nil {
				log.Error(ctx, ErrStartScheduler, zap.Error(err))
				_ = closeResources(ctx, rentalCache, database)
				exitCode = 1
				return
			}
		}

		log.Info(ctx, LogInitHTTPServer)
		server := httpServer.NewApp(&cfg.HTTP)
		httpServer.SetupRouter(server, rentalUseCase, database)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		// Порядок важен: сначала входящие запросы и фоновые задачи, затем хранилища.
		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				httpErr := server.ShutdownWithContext(ctx)

				var schedulerErr error
				if monitor != nil {
					log.Info(ctx, LogStoppingScheduler)
					schedulerErr = monitor.Stop(ctx)
				}

				return errors.Join(httpErr, schedulerErr, closeResources(ctx, rentalCache, database))
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func closeResources(ctx context.Context, rentalCache cachePorts.Cache, database *db.DB) error {
	var cacheErr error
	if rentalCache != nil {
		logger.Log(ctx).Info(ctx, LogClosingCache)
		cacheErr = rentalCache.Close()
	}

	logger.Log(ctx).Info(ctx, LogClosingDatabase)
	database.Close(ctx)

	return cacheErr
}
