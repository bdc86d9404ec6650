package repositories

import (
	"context"
	"time"

	"movierental/internal/rentals/domain/entities"
)

// RentalReader определяет чтение прокатов.
type RentalReader interface {
	FindAll(ctx context.Context) ([]*entities.Rental, error)

	// FindByID возвращает прокат вместе с фильмами или nil, nil, если его нет.
	FindByID(ctx context.Context, id int64) (*entities.Rental, error)

	// FindPendingByUserID возвращает открытые прокаты пользователя.
	FindPendingByUserID(ctx context.Context, userID int64) ([]*entities.Rental, error)

	// FindOverdue возвращает открытые прокаты с датой окончания раньше at.
	FindOverdue(ctx context.Context, at time.Time) ([]*entities.Rental, error)
}

// RentalWriter определяет изменение прокатов.
type RentalWriter interface {
	// Create создает прокат и помечает каждый фильм как занятый им.
	Create(ctx context.Context, userID int64, movieIDs []int64) (*entities.Rental, error)

	// Finish закрывает прокат и освобождает его фильмы.
	Finish(ctx context.Context, id int64) (*entities.Rental, error)
}

// RentalRepository объединяет чтение и изменение прокатов.
type RentalRepository interface {
	RentalReader
	RentalWriter
}
