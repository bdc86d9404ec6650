package cache

import (
	"context"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"movierental/internal/rentals/domain/entities"
	"movierental/internal/rentals/ports/cache"
	"movierental/internal/rentals/ports/repositories"
	"movierental/pkg/logger"
)

const rentalKeyPrefix = "rental:"

const (
	logCacheHit          = "rental served from cache"
	logCacheReadFailed   = "rental cache read failed"
	logCacheDecodeFailed = "cached rental is malformed"
	logCacheWriteFailed  = "rental cache write failed"
	logCacheEvictFailed  = "rental cache invalidation failed"
)

// RentalRepository кэширует детали прокатов поверх другого репозитория.
// Ошибки кэша не прерывают операцию: запрос уходит в хранилище.
type RentalRepository struct {
	repositories.RentalRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewRentalRepository оборачивает next кэшем c.
func NewRentalRepository(next repositories.RentalRepository, c cache.Cache, ttl time.Duration) repositories.RentalRepository {
	return &RentalRepository{RentalRepository: next, cache: c, ttl: ttl}
}

// RentalKey возвращает ключ кэша для проката.
func RentalKey(id int64) string {
	return rentalKeyPrefix + strconv.FormatInt(id, 10)
}

// FindByID возвращает прокат из кэша или из хранилища.
func (r *RentalRepository) FindByID(ctx context.Context, id int64) (*entities.Rental, error) {
	log := logger.Log(ctx).With(zap.String("repository", "rental_cache"), zap.String("method", "FindByID"),
		zap.Int64("rentalID", id))
	key := RentalKey(id)

	cached, err := r.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn(ctx, logCacheReadFailed, zap.Error(err))
	case cached != "":
		var rental entities.Rental
		if err := jsoniter.ConfigFastest.UnmarshalFromString(cached, &rental); err == nil {
			log.Debug(ctx, logCacheHit)
			return &rental, nil
		}
		log.Warn(ctx, logCacheDecodeFailed)
	}

	rental, err := r.RentalRepository.FindByID(ctx, id)
	if err != nil || rental == nil {
		return rental, err
	}

	encoded, err := jsoniter.ConfigFastest.MarshalToString(rental)
	if err == nil {
		err = r.cache.Set(ctx, key, encoded, r.ttl)
	}
	if err != nil {
		log.Warn(ctx, logCacheWriteFailed, zap.Error(err))
	}

	return rental, nil
}

// Create создает прокат и сбрасывает его ключ.
func (r *RentalRepository) Create(ctx context.Context, userID int64, movieIDs []int64) (*entities.Rental, error) {
	rental, err := r.RentalRepository.Create(ctx, userID, movieIDs)
	if err != nil || rental == nil {
		return rental, err
	}
	r.evict(ctx, rental.ID)
	return rental, nil
}

// Finish закрывает прокат и сбрасывает его ключ.
func (r *RentalRepository) Finish(ctx context.Context, id int64) (*entities.Rental, error) {
	rental, err := r.RentalRepository.Finish(ctx, id)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, id)
	return rental, nil
}

func (r *RentalRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, RentalKey(id)); err != nil {
		logger.Log(ctx).Warn(ctx, logCacheEvictFailed, zap.Int64("rentalID", id), zap.Error(err))
	}
}
