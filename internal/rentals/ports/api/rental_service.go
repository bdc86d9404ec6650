// Package api определяет порты сервиса проката для внешних адаптеров.
package api

import (
	"context"

	"movierental/internal/rentals/domain/entities"
)

// RentalUseCase определяет основной порт операций с прокатами.
type RentalUseCase interface {
	CreateRental(ctx context.Context, input entities.RentalInput) (*entities.Rental, error)

	GetRentals(ctx context.Context) ([]*entities.Rental, error)

	GetRentalByID(ctx context.Context, id int64) (*entities.Rental, error)

	FinishRental(ctx context.Context, id int64) (*entities.Rental, error)
}
