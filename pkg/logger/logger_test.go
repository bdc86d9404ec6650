package logger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movierental/pkg/logger"
)

func TestFromContext(t *testing.T) {
	t.Run("success when logger exists in context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		retrievedLogger, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, retrievedLogger)
	})

	t.Run("error when no logger in context", func(t *testing.T) {
		retrievedLogger, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, retrievedLogger)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("error when context has non-logger values", func(t *testing.T) {
		type ctxKeyType struct{}

		ctx := context.WithValue(context.Background(), ctxKeyType{}, "not a logger")

		retrievedLogger, err := logger.FromContext(ctx)
		require.Error(t, err)
		assert.Nil(t, retrievedLogger)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestInitGlobalLoggerWithLevel(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	err := logger.InitGlobalLoggerWithLevel(logger.Production, "info")
	require.NoError(t, err)

	firstLogger := logger.Log(context.Background())
	require.NotNil(t, firstLogger)

	err = logger.InitGlobalLoggerWithLevel(logger.Development, "debug")
	require.NoError(t, err)

	assert.Same(t, firstLogger, logger.Log(context.Background()), "existing global logger must be kept")
}

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("returns logger from context when available", func(t *testing.T) {
		contextLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		globalLogger, err := logger.NewLogger(logger.Production, "error")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		ctx := logger.NewContext(context.Background(), contextLogger)

		result := logger.Log(ctx)
		assert.Same(t, contextLogger, result)
	})

	t.Run("returns global logger when no logger in context", func(t *testing.T) {
		globalLogger, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		assert.Same(t, globalLogger, logger.Log(context.Background()))
	})

	t.Run("returns the same fallback logger instance each time", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		result1 := logger.Log(context.Background())
		result2 := logger.Log(context.Background())

		require.NotNil(t, result1)
		assert.Same(t, result1, result2, "fallback logger should be a singleton")
	})
}

func TestLoggerMethods(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("With creates new logger instance", func(t *testing.T) {
		newLog := log.With(zap.String("key", "value"))

		assert.NotNil(t, newLog)
		assert.NotSame(t, log, newLog, "With() should return a new logger instance")
	})

	t.Run("Logging methods with request ID context", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "test-request-id-123")

		assert.NotPanics(t, func() {
			log.Debug(ctx, "debug message with request ID")
			log.Info(ctx, "info message with request ID")
			log.Warn(ctx, "warning message with request ID")
			log.Error(ctx, "error message with request ID", zap.Int("count", 100))
		})
	})

	t.Run("WithRequestID", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "test-request-id-456")

		assert.NotSame(t, log, log.WithRequestID(ctx))
		assert.Same(t, log, log.WithRequestID(context.Background()))
	})
}

func TestNewLogger(t *testing.T) {
	levels := []string{"debug", "info", "warn", "warning", "error", "invalid", ""}

	for _, env := range []logger.Environment{logger.Development, logger.Production} {
		for _, level := range levels {
			t.Run(string(env)+"/level="+level, func(t *testing.T) {
				log, err := logger.NewLogger(env, level)
				require.NoError(t, err)
				require.NotNil(t, log)
			})
		}
	}
}

func TestRequestID(t *testing.T) {
	t.Run("generates valid unique UUIDs", func(t *testing.T) {
		id1 := logger.GenerateRequestID()
		id2 := logger.GenerateRequestID()

		assert.NotEqual(t, id1, id2, "generated IDs should be unique")

		parsed, err := uuid.Parse(id1)
		require.NoError(t, err, "generated ID should be a valid UUID")
		assert.Equal(t, uuid.Version(4), parsed.Version())
	})

	t.Run("empty id is replaced with a generated one", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("explicit id is preserved", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "fixed-id")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "fixed-id", id)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}

func TestContextWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		keep      bool
	}{
		{name: "plain id is kept", candidate: "req-42", keep: true},
		{name: "surrounding spaces are trimmed", candidate: "  req-42  ", keep: true},
		{name: "empty id is replaced", candidate: ""},
		{name: "inner whitespace is rejected", candidate: "req 42"},
		{name: "control characters are rejected", candidate: "req\n42"},
		{name: "too long id is rejected", candidate: strings.Repeat("a", logger.MaxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := logger.ContextWithRequestID(context.Background(), tt.candidate)

			stored, ok := logger.GetRequestID(ctx)
			require.True(t, ok)
			assert.Equal(t, id, stored)

			if tt.keep {
				assert.Equal(t, strings.TrimSpace(tt.candidate), id)
			} else {
				_, err := uuid.Parse(id)
				assert.NoError(t, err, "rejected id should be replaced with a UUID")
			}
		})
	}
}
