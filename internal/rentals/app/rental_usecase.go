// Package app содержит сценарии использования сервиса проката.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"movierental/internal/rentals/domain/entities"
	"movierental/internal/rentals/ports/api"
	"movierental/internal/rentals/ports/repositories"
	svc "movierental/internal/rentals/ports/services"
	"movierental/pkg/logger"
)

const (
	methodCreateRental  = "CreateRental"
	methodGetRentals    = "GetRentals"
	methodGetRentalByID = "GetRentalByID"
	methodFinishRental  = "FinishRental"
	methodCheckMovie    = "checkMovie"

	msgStartCreatingRental = "starting rental creation"
	msgUserNotFound        = "user not found"
	msgUserHasPending      = "user already has an open rental"
	msgMovieNotFound       = "movie not found"
	msgMovieInRental       = "movie already in a rental"
	msgInsufficientAge     = "user is too young for adults only movie"
	msgMovieAccepted       = "movie passed all checks"
	msgRentalCreated       = "rental created successfully"
	msgListingRentals      = "listing rentals"
	msgRentalsListed       = "rentals listed"
	msgRequestingRental    = "requesting rental"
	msgRentalNotFound      = "rental not found"
	msgRentalRetrieved     = "rental successfully retrieved"
	msgFinishingRental     = "finishing rental"
	msgRentalAlreadyClosed = "rental already closed"
	msgRentalRaceClosed    = "rental was closed before finish completed"
	msgRentalFinished      = "rental finished successfully"

	msgErrFindingUser     = "failed to find user by ID"
	msgErrFindingPending  = "failed to find pending rentals"
	msgErrFindingMovie    = "failed to find movie by ID"
	msgErrCreatingRental  = "failed to create rental"
	msgErrListingRentals  = "failed to list rentals"
	msgErrFindingRental   = "failed to find rental by ID"
	msgErrFinishingRental = "failed to finish rental"

	errCtxFindingUser     = "finding user"
	errCtxCheckingUser    = "checking user"
	errCtxFindingPending  = "finding pending rentals"
	errCtxCheckingPending = "checking pending rentals"
	errCtxFindingMovie    = "finding movie %d"
	errCtxCheckingMovie   = "checking movie %d"
	errCtxCreatingRental  = "creating rental"
	errCtxListingRentals  = "listing rentals"
	errCtxFindingRental   = "finding rental"
	errCtxCheckingRental  = "checking rental"
	errCtxFinishingRental = "finishing rental"
)

// RentalUseCaseImpl реализует интерфейс RentalUseCase.
type RentalUseCaseImpl struct {
	userRepo   repositories.UserRepository
	movieRepo  repositories.MovieRepository
	rentalRepo repositories.RentalRepository
	agePolicy  svc.AgePolicy
}

// NewRentalUseCase создает новый экземпляр сервиса проката.
func NewRentalUseCase(
	userRepo repositories.UserRepository,
	movieRepo repositories.MovieRepository,
	rentalRepo repositories.RentalRepository,
	agePolicy svc.AgePolicy,
) api.RentalUseCase {
	return &RentalUseCaseImpl{
		userRepo:   userRepo,
		movieRepo:  movieRepo,
		rentalRepo: rentalRepo,
		agePolicy:  agePolicy,
	}
}

// CreateRental проверяет запрос и создает прокат.
// Проверки выполняются строго по порядку, первая неудачная прерывает операцию:
// существование пользователя, отсутствие открытого проката, затем для каждого
// фильма в порядке запроса - существование, доступность и возрастное ограничение.
func (r *RentalUseCaseImpl) CreateRental(ctx context.Context, input entities.RentalInput) (*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateRental), zap.Int64("userID", input.UserID))
	log.Debug(ctx, msgStartCreatingRental, zap.Int64s("moviesID", input.MoviesID))

	user, err := r.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user == nil {
		log.Debug(ctx, msgUserNotFound)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, entities.ErrUserNotFound)
	}

	pending, err := r.rentalRepo.FindPendingByUserID(ctx, input.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingPending, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingPending, err)
	}
	if len(pending) > 0 {
		log.Debug(ctx, msgUserHasPending, zap.Int64("rentalID", pending[0].ID))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingPending, entities.ErrPendentRental)
	}

	for _, movieID := range input.MoviesID {
		if err := r.checkMovie(ctx, user, movieID); err != nil {
			return nil, err
		}
	}

	rental, err := r.rentalRepo.Create(ctx, input.UserID, input.MoviesID)
	if err != nil {
		log.Error(ctx, msgErrCreatingRental, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingRental, err)
	}

	if rental != nil {
		log = log.With(zap.Int64("rentalID", rental.ID))
	}
	log.Info(ctx, msgRentalCreated)
	return rental, nil
}

// checkMovie проверяет один фильм: существование, доступность, возраст.
func (r *RentalUseCaseImpl) checkMovie(ctx context.Context, user *entities.User, movieID int64) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodCheckMovie),
		zap.Int64("userID", user.ID),
		zap.Int64("movieID", movieID),
	)

	movie, err := r.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		log.Error(ctx, msgErrFindingMovie, zap.Error(err))
		return fmt.Errorf(errCtxFindingMovie+": %w", movieID, err)
	}
	if movie == nil {
		log.Debug(ctx, msgMovieNotFound)
		return fmt.Errorf(errCtxCheckingMovie+": %w", movieID, entities.ErrMovieNotFound)
	}

	if !movie.IsAvailable() {
		log.Debug(ctx, msgMovieInRental, zap.Int64("rentalID", *movie.RentalID))
		return fmt.Errorf(errCtxCheckingMovie+": %w", movieID, entities.ErrMovieInRental)
	}

	if movie.AdultsOnly && !r.agePolicy.IsAdult(user.BirthDate) {
		log.Debug(ctx, msgInsufficientAge)
		return fmt.Errorf(errCtxCheckingMovie+": %w", movieID, entities.ErrInsufficientAge)
	}

	log.Debug(ctx, msgMovieAccepted)
	return nil
}

// GetRentals возвращает все прокаты без фильтрации.
func (r *RentalUseCaseImpl) GetRentals(ctx context.Context) ([]*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetRentals))
	log.Debug(ctx, msgListingRentals)

	rentals, err := r.rentalRepo.FindAll(ctx)
	if err != nil {
		log.Error(ctx, msgErrListingRentals, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingRentals, err)
	}

	log.Debug(ctx, msgRentalsListed, zap.Int("count", len(rentals)))
	return rentals, nil
}

// GetRentalByID возвращает прокат вместе с его фильмами.
func (r *RentalUseCaseImpl) GetRentalByID(ctx context.Context, id int64) (*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetRentalByID), zap.Int64("rentalID", id))
	log.Debug(ctx, msgRequestingRental)

	rental, err := r.rentalRepo.FindByID(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrFindingRental, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingRental, err)
	}
	if rental == nil {
		log.Debug(ctx, msgRentalNotFound)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRental, entities.ErrRentalNotFound)
	}

	log.Debug(ctx, msgRentalRetrieved)
	return rental, nil
}

// FinishRental закрывает открытый прокат и освобождает его фильмы.
func (r *RentalUseCaseImpl) FinishRental(ctx context.Context, id int64) (*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFinishRental), zap.Int64("rentalID", id))
	log.Debug(ctx, msgFinishingRental)

	rental, err := r.rentalRepo.FindByID(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrFindingRental, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingRental, err)
	}
	if rental == nil {
		log.Debug(ctx, msgRentalNotFound)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRental, entities.ErrRentalNotFound)
	}
	if rental.Closed {
		log.Debug(ctx, msgRentalAlreadyClosed)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRental, entities.ErrRentalClosed)
	}

	finished, err := r.rentalRepo.Finish(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrFinishingRental, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFinishingRental, err)
	}
	if finished == nil {
		log.Debug(ctx, msgRentalRaceClosed)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRental, entities.ErrRentalClosed)
	}

	log.Info(ctx, msgRentalFinished, zap.Int64("userID", rental.UserID))
	return finished, nil
}
