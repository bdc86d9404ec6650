// Package repositories определяет порты хранилища сервиса проката.
package repositories

import (
	"context"

	"movierental/internal/rentals/domain/entities"
)

// UserRepository определяет поиск пользователей.
type UserRepository interface {
	// FindByID возвращает nil, nil, если пользователь не существует.
	FindByID(ctx context.Context, id int64) (*entities.User, error)
}
