package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"movierental/pkg/logger"
)

var (
	errDatabaseConnection = errors.New("database connection failed")
	errScanningRow        = errors.New("incompatible types")
)

var (
	userCols   = []string{"id", "first_name", "last_name", "email", "cpf", "birth_date"}
	movieCols  = []string{"id", "name", "adults_only", "rental_id"}
	rentalCols = []string{"id", "date", "end_date", "user_id", "closed"}
)

var (
	rentalDate    = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	rentalEndDate = rentalDate.Add(72 * time.Hour)
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func int64Ptr(v int64) *int64 {
	return &v
}
