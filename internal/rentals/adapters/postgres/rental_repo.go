package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"movierental/internal/rentals/domain/entities"
	"movierental/internal/rentals/ports/repositories"
	"movierental/pkg/logger"
)

// Константы для сообщений логгера и ошибок репозитория прокатов.
const (
	logRentalNotFound       = "rental not found"
	logRentalCreated        = "rental created"
	logRentalFinished       = "rental finished"
	logErrListingRentals    = "error listing rentals"
	logErrFindingRental     = "error finding rental by id"
	logErrFindingMovies     = "error finding rental movies"
	logErrFindingPending    = "error finding pending rentals"
	logErrFindingOverdue    = "error finding overdue rentals"
	logErrBeginTx           = "error starting transaction"
	logErrInsertingRental   = "error inserting rental"
	logErrOccupyingMovies   = "error marking movies as rented"
	logErrClosingRental     = "error closing rental"
	logErrReleasingMovies   = "error releasing movies"
	logErrCommitTx          = "error committing transaction"
	errQueryingRentals      = "error querying rentals"
	errQueryingRentalByID   = "error querying rental by id"
	errQueryingRentalMovies = "error querying rental movies"
	errScanningRental       = "error scanning rental"
	errScanningMovie        = "error scanning movie"
	errBeginTx              = "error starting transaction"
	errCreatingRental       = "error creating rental"
	errOccupyingMovies      = "error marking movies as rented"
	errClosingRental        = "error closing rental"
	errReleasingMovies      = "error releasing movies"
	errCommitTx             = "error committing transaction"
)

// RentalRepository реализует repositories.RentalRepository для Postgres.
type RentalRepository struct {
	pool   PgxPoolInterface
	period time.Duration
	now    func() time.Time
}

// NewRentalRepository создает репозиторий прокатов. period задает
// дату окончания нового проката относительно момента его создания.
func NewRentalRepository(pool PgxPoolInterface, period time.Duration) repositories.RentalRepository {
	return newRentalRepository(pool, period, time.Now)
}

func newRentalRepository(pool PgxPoolInterface, period time.Duration, now func() time.Time) *RentalRepository {
	return &RentalRepository{pool: pool, period: period, now: now}
}

// FindAll возвращает все прокаты без фильмов.
func (r *RentalRepository) FindAll(ctx context.Context) ([]*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("repository", "rental"), zap.String("method", "FindAll"))

	query, _, err := builder().
		From(tableRentals).
		Select(rentalColumns...).
		Order(goqu.I(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	rentals, err := r.queryRentals(ctx, query)
	if err != nil {
		log.Error(ctx, logErrListingRentals, zap.Error(err))
		return nil, err
	}

	return rentals, nil
}

// FindByID возвращает прокат вместе с фильмами.
func (r *RentalRepository) FindByID(ctx context.Context, id int64) (*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("repository", "rental"), zap.String("method", "FindByID"),
		zap.Int64("rentalID", id))

	query, _, err := builder().
		From(tableRentals).
		Select(rentalColumns...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	rental, err := scanRental(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, logRentalNotFound)
			return nil, nil
		}
		log.Error(ctx, logErrFindingRental, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errQueryingRentalByID, err)
	}

	movies, err := r.findMovies(ctx, id)
	if err != nil {
		log.Error(ctx, logErrFindingMovies, zap.Error(err))
		return nil, err
	}
	rental.Movies = movies

	return rental, nil
}

// FindPendingByUserID возвращает открытые прокаты пользователя.
func (r *RentalRepository) FindPendingByUserID(ctx context.Context, userID int64) ([]*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("repository", "rental"), zap.String("method", "FindPendingByUserID"),
		zap.Int64("userID", userID))

	query, _, err := builder().
		From(tableRentals).
		Select(rentalColumns...).
		Where(goqu.C(colUserID).Eq(userID), goqu.C(colClosed).IsFalse()).
		Order(goqu.I(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	rentals, err := r.queryRentals(ctx, query)
	if err != nil {
		log.Error(ctx, logErrFindingPending, zap.Error(err))
		return nil, err
	}

	return rentals, nil
}

// FindOverdue возвращает открытые прокаты, срок которых истек до at.
func (r *RentalRepository) FindOverdue(ctx context.Context, at time.Time) ([]*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("repository", "rental"), zap.String("method", "FindOverdue"))

	query, _, err := builder().
		From(tableRentals).
		Select(rentalColumns...).
		Where(goqu.C(colClosed).IsFalse(), goqu.C(colEndDate).Lt(at)).
		Order(goqu.I(colEndDate).Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	rentals, err := r.queryRentals(ctx, query)
	if err != nil {
		log.Error(ctx, logErrFindingOverdue, zap.Error(err))
		return nil, err
	}

	return rentals, nil
}

// Create вставляет прокат и в той же транзакции занимает им фильмы.
func (r *RentalRepository) Create(ctx context.Context, userID int64, movieIDs []int64) (rental *entities.Rental, err error) {
	log := logger.Log(ctx).With(zap.String("repository", "rental"), zap.String("method", "Create"),
		zap.Int64("userID", userID))

	now := r.now().UTC()
	insertQuery, _, err := builder().
		Insert(tableRentals).
		Rows(goqu.Record{colDate: now, colEndDate: now.Add(r.period), colUserID: userID}).
		Returning(rentalColumns...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, logErrBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errBeginTx, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rental, err = scanRental(tx.QueryRow(ctx, insertQuery))
	if err != nil {
		log.Error(ctx, logErrInsertingRental, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCreatingRental, err)
	}

	if len(movieIDs) > 0 {
		updateQuery, _, buildErr := builder().
			Update(tableMovies).
			Set(goqu.Record{colRentalID: rental.ID}).
			Where(goqu.C(colID).In(movieIDs)).
			ToSQL()
		if buildErr != nil {
			err = fmt.Errorf("%s: %w", errBuildingQuery, buildErr)
			return nil, err
		}

		if _, err = tx.Exec(ctx, updateQuery); err != nil {
			log.Error(ctx, logErrOccupyingMovies, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errOccupyingMovies, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error(ctx, logErrCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCommitTx, err)
	}

	log.Debug(ctx, logRentalCreated, zap.Int64("rentalID", rental.ID), zap.Int("movies", len(movieIDs)))
	return rental, nil
}

// Finish закрывает открытый прокат и освобождает его фильмы.
// Возвращает nil, nil, если открытого проката с таким ID нет.
func (r *RentalRepository) Finish(ctx context.Context, id int64) (rental *entities.Rental, err error) {
	log := logger.Log(ctx).With(zap.String("repository", "rental"), zap.String("method", "Finish"),
		zap.Int64("rentalID", id))

	closeQuery, _, err := builder().
		Update(tableRentals).
		Set(goqu.Record{colClosed: true}).
		Where(goqu.C(colID).Eq(id), goqu.C(colClosed).IsFalse()).
		Returning(rentalColumns...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	releaseQuery, _, err := builder().
		Update(tableMovies).
		Set(goqu.Record{colRentalID: nil}).
		Where(goqu.C(colRentalID).Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, logErrBeginTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errBeginTx, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rental, err = scanRental(tx.QueryRow(ctx, closeQuery))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, logRentalNotFound)
			_ = tx.Rollback(ctx)
			return nil, nil
		}
		log.Error(ctx, logErrClosingRental, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errClosingRental, err)
	}

	if _, err = tx.Exec(ctx, releaseQuery); err != nil {
		log.Error(ctx, logErrReleasingMovies, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errReleasingMovies, err)
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error(ctx, logErrCommitTx, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCommitTx, err)
	}

	log.Debug(ctx, logRentalFinished)
	return rental, nil
}

func (r *RentalRepository) queryRentals(ctx context.Context, query string) ([]*entities.Rental, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errQueryingRentals, err)
	}
	defer rows.Close()

	rentals := make([]*entities.Rental, 0)
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errScanningRental, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errQueryingRentals, err)
	}

	return rentals, nil
}

func (r *RentalRepository) findMovies(ctx context.Context, rentalID int64) ([]*entities.Movie, error) {
	query, _, err := builder().
		From(tableMovies).
		Select(movieColumns...).
		Where(goqu.C(colRentalID).Eq(rentalID)).
		Order(goqu.I(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildingQuery, err)
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errQueryingRentalMovies, err)
	}
	defer rows.Close()

	movies := make([]*entities.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errScanningMovie, err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errQueryingRentalMovies, err)
	}

	return movies, nil
}

func scanRental(row rowScanner) (*entities.Rental, error) {
	var rental entities.Rental
	if err := row.Scan(&rental.ID, &rental.Date, &rental.EndDate, &rental.UserID, &rental.Closed); err != nil {
		return nil, err
	}
	return &rental, nil
}
