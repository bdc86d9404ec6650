package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"movierental/internal/rentals/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

type mockMovieRepository struct {
	mock.Mock
}

func (m *mockMovieRepository) FindByID(ctx context.Context, id int64) (*entities.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*entities.Movie)
	return movie, args.Error(1)
}

type mockRentalRepository struct {
	mock.Mock
}

func (m *mockRentalRepository) FindAll(ctx context.Context) ([]*entities.Rental, error) {
	args := m.Called(ctx)
	rentals, _ := args.Get(0).([]*entities.Rental)
	return rentals, args.Error(1)
}

func (m *mockRentalRepository) FindByID(ctx context.Context, id int64) (*entities.Rental, error) {
	args := m.Called(ctx, id)
	rental, _ := args.Get(0).(*entities.Rental)
	return rental, args.Error(1)
}

func (m *mockRentalRepository) FindPendingByUserID(ctx context.Context, userID int64) ([]*entities.Rental, error) {
	args := m.Called(ctx, userID)
	rentals, _ := args.Get(0).([]*entities.Rental)
	return rentals, args.Error(1)
}

func (m *mockRentalRepository) FindOverdue(ctx context.Context, at time.Time) ([]*entities.Rental, error) {
	args := m.Called(ctx, at)
	rentals, _ := args.Get(0).([]*entities.Rental)
	return rentals, args.Error(1)
}

func (m *mockRentalRepository) Create(ctx context.Context, userID int64, movieIDs []int64) (*entities.Rental, error) {
	args := m.Called(ctx, userID, movieIDs)
	rental, _ := args.Get(0).(*entities.Rental)
	return rental, args.Error(1)
}

func (m *mockRentalRepository) Finish(ctx context.Context, id int64) (*entities.Rental, error) {
	args := m.Called(ctx, id)
	rental, _ := args.Get(0).(*entities.Rental)
	return rental, args.Error(1)
}

// inMemoryStore - упрощенное хранилище для сценариев из нескольких вызовов.
type inMemoryStore struct {
	users   map[int64]*entities.User
	movies  map[int64]*entities.Movie
	rentals []*entities.Rental
}

func newInMemoryStore() *inMemoryStore {
	return &inMemoryStore{
		users:  make(map[int64]*entities.User),
		movies: make(map[int64]*entities.Movie),
	}
}

type inMemoryUsers struct{ s *inMemoryStore }

func (u inMemoryUsers) FindByID(_ context.Context, id int64) (*entities.User, error) {
	return u.s.users[id], nil
}

type inMemoryMovies struct{ s *inMemoryStore }

func (m inMemoryMovies) FindByID(_ context.Context, id int64) (*entities.Movie, error) {
	return m.s.movies[id], nil
}

type inMemoryRentals struct{ s *inMemoryStore }

func (r inMemoryRentals) FindAll(_ context.Context) ([]*entities.Rental, error) {
	return r.s.rentals, nil
}

func (r inMemoryRentals) FindByID(_ context.Context, id int64) (*entities.Rental, error) {
	for _, rental := range r.s.rentals {
		if rental.ID == id {
			return rental, nil
		}
	}
	return nil, nil
}

func (r inMemoryRentals) FindPendingByUserID(_ context.Context, userID int64) ([]*entities.Rental, error) {
	var pending []*entities.Rental
	for _, rental := range r.s.rentals {
		if rental.UserID == userID && !rental.Closed {
			pending = append(pending, rental)
		}
	}
	return pending, nil
}

func (r inMemoryRentals) FindOverdue(_ context.Context, at time.Time) ([]*entities.Rental, error) {
	var overdue []*entities.Rental
	for _, rental := range r.s.rentals {
		if !rental.Closed && rental.EndDate.Before(at) {
			overdue = append(overdue, rental)
		}
	}
	return overdue, nil
}

func (r inMemoryRentals) Create(_ context.Context, userID int64, movieIDs []int64) (*entities.Rental, error) {
	rental := &entities.Rental{
		ID:      int64(len(r.s.rentals) + 1),
		Date:    time.Now(),
		EndDate: time.Now().Add(72 * time.Hour),
		UserID:  userID,
	}
	for _, id := range movieIDs {
		rentalID := rental.ID
		r.s.movies[id].RentalID = &rentalID
		rental.Movies = append(rental.Movies, r.s.movies[id])
	}
	r.s.rentals = append(r.s.rentals, rental)
	return rental, nil
}

func (r inMemoryRentals) Finish(_ context.Context, id int64) (*entities.Rental, error) {
	for _, rental := range r.s.rentals {
		if rental.ID != id {
			continue
		}
		rental.Closed = true
		for _, movie := range r.s.movies {
			if movie.RentalID != nil && *movie.RentalID == id {
				movie.RentalID = nil
			}
		}
		return rental, nil
	}
	return nil, nil
}
