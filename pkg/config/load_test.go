package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierental/pkg/config"
)

type sampleConfig struct {
	Host string `yaml:"host" env:"SAMPLE_HOST" env-default:"localhost"`
	Port int    `yaml:"port" env:"SAMPLE_PORT" env-default:"8080"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults from env-default tags", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "sample", "")

		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SAMPLE_PORT", "9090")

		cfg, err := config.Load[sampleConfig](ctx, "sample", "")

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("missing file falls back to environment", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "sample", filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("reads yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: db.internal\nport: 7000\n"), 0o600))

		cfg, err := config.Load[sampleConfig](ctx, "sample", path)

		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 7000, cfg.Port)
	})

	t.Run("invalid environment value", func(t *testing.T) {
		t.Setenv("SAMPLE_PORT", "not-a-number")

		cfg, err := config.Load[sampleConfig](ctx, "sample", "")

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})
}
