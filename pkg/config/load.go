// Package config предоставляет функциональность для загрузки конфигурации
// из файла или переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"movierental/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgConfigFileMissing       = "configuration file not found, using environment"
	msgFailedLoadConfiguration = "failed to load configuration"

	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load заполняет структуру T из файла path (yaml, json, toml или .env)
// с переопределением переменными окружения. Если path пуст или файла нет,
// используются только переменные окружения и значения env-default.
func Load[T any](ctx context.Context, serviceName, path string) (*T, error) {
	log := logger.Log(ctx)

	log.Info(ctx, msgLoadingConfiguration,
		zap.String(attrService, serviceName),
		zap.String(attrPath, path))

	var cfg T
	var err error

	if path != "" {
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			log.Warn(ctx, msgConfigFileMissing, zap.String(attrPath, path))
			path = ""
		}
	}

	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, msgFailedLoadConfiguration,
			zap.String(attrService, serviceName),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded,
		zap.String(attrService, serviceName))

	return &cfg, nil
}
