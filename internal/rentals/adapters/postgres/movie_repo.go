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

// MovieRepository реализует repositories.MovieRepository для Postgres.
type MovieRepository struct {
	pool PgxPoolInterface
}

// NewMovieRepository создает новый экземпляр репозитория фильмов.
func NewMovieRepository(pool PgxPoolInterface) repositories.MovieRepository {
	return &MovieRepository{pool: pool}
}

// FindByID находит фильм по ID.
func (r *MovieRepository) FindByID(ctx context.Context, id int64) (*entities.Movie, error) {
	log := logger.Log(ctx).With(zap.String("repository", "movie"), zap.String("method", "FindByID"))

	query, _, err := builder().
		From(tableMovies).
		Select(movieColumns...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	movie, err := scanMovie(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "movie not found", zap.Int64("id", id))
			return nil, nil
		}
		log.Error(ctx, "error finding movie by id", zap.Error(err))
		return nil, fmt.Errorf("error querying movie by id: %w", err)
	}

	return movie, nil
}

func scanMovie(row rowScanner) (*entities.Movie, error) {
	var movie entities.Movie
	if err := row.Scan(&movie.ID, &movie.Name, &movie.AdultsOnly, &movie.RentalID); err != nil {
		return nil, err
	}
	return &movie, nil
}
