// Package http содержит компоненты для HTTP сервера.
package http

import (
	"context"

	"github.com/gofiber/fiber/v3"
	jsoniter "github.com/json-iterator/go"

	"movierental/internal/rentals/adapters/http/middleware"
	"movierental/internal/rentals/adapters/http/rentals"
	"movierental/internal/rentals/config"
	"movierental/internal/rentals/domain/entities"
	"movierental/internal/rentals/ports/api"
)

// Pinger проверяет доступность зависимости для /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewApp создает fiber приложение с кодеком jsoniter.
func NewApp(cfg *config.HTTPConfig) *fiber.App {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	return fiber.New(fiber.Config{
		AppName:      "rentals",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: rentals.ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// db может быть nil, тогда /health всегда отвечает ok.
func SetupRouter(app *fiber.App, rentalUseCase api.RentalUseCase, db Pinger) {
	rentalHandler := rentals.NewHandler(rentalUseCase)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", healthHandler(db))

	apiV1 := app.Group("/api/v1")

	rentalRoutes := apiV1.Group("/rentals")
	rentalRoutes.Get("/", rentalHandler.ListRentals)
	rentalRoutes.Post("/", rentalHandler.CreateRental)
	rentalRoutes.Get("/:id", rentalHandler.GetRental)
	rentalRoutes.Post("/:id/finish", rentalHandler.FinishRental)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(rentals.ErrorResponse{
			Name:    string(entities.KindNotFound),
			Message: "Route not found.",
		})
	})
}

func healthHandler(db Pinger) fiber.Handler {
	return func(c fiber.Ctx) error {
		if db != nil {
			if err := db.Ping(middleware.RequestContext(c)); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
