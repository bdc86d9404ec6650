package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierental/pkg/db/redis"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("connects to running server", func(t *testing.T) {
		srv := miniredis.RunT(t)

		host, portStr, _ := strings.Cut(srv.Addr(), ":")
		port, err := strconv.Atoi(portStr)
		require.NoError(t, err)

		cfg := redis.DefaultConfig()
		cfg.Host = host
		cfg.Port = port

		client, err := redis.NewClient(ctx, cfg)
		require.NoError(t, err)
		defer client.Close()

		require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		got, err := srv.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("fails on unreachable server", func(t *testing.T) {
		cfg := redis.DefaultConfig()
		cfg.Host = "127.0.0.1"
		cfg.Port = 1
		cfg.DialTimeout = 100 * time.Millisecond

		client, err := redis.NewClient(ctx, cfg)

		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), redis.ErrConnect)
	})
}
