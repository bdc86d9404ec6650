package repositories

import (
	"context"

	"movierental/internal/rentals/domain/entities"
)

// MovieRepository определяет поиск фильмов.
type MovieRepository interface {
	// FindByID возвращает nil, nil, если фильм не существует.
	FindByID(ctx context.Context, id int64) (*entities.Movie, error)
}
