package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"movierental/internal/rentals/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo   repositories.UserRepository
	movieRepo  repositories.MovieRepository
	rentalRepo repositories.RentalRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool, rentalPeriod time.Duration) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:   NewUserRepository(pool),
		movieRepo:  NewMovieRepository(pool),
		rentalRepo: NewRentalRepository(pool, rentalPeriod),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// MovieRepository возвращает репозиторий фильмов.
func (f *RepositoryFactory) MovieRepository() repositories.MovieRepository {
	return f.movieRepo
}

// RentalRepository возвращает репозиторий прокатов.
func (f *RepositoryFactory) RentalRepository() repositories.RentalRepository {
	return f.rentalRepo
}
