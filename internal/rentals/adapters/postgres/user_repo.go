package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"movierental/internal/rentals/domain/entities"
	"movierental/internal/rentals/ports/repositories"
	"movierental/pkg/logger"
)

// UserRepository реализует repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query, _, err := builder().
		From(tableUsers).
		Select(userColumns...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	var user entities.User
	err = r.pool.QueryRow(ctx, query).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.CPF,
		&user.BirthDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, nil
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}
