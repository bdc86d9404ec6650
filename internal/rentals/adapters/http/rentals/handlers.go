// Package rentals содержит HTTP-обработчики для управления прокатами.
package rentals

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"movierental/internal/rentals/adapters/http/middleware"
	"movierental/internal/rentals/domain/entities"
	"movierental/internal/rentals/ports/api"
	"movierental/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateRental = "handling create rental request"
	LogHandlerListRentals  = "handling list rentals request"
	LogHandlerGetRental    = "handling get rental request"
	LogHandlerFinishRental = "handling finish rental request"
	LogRequestRejected     = "rental request rejected"

	ErrMsgInvalidRequestBody = "Invalid request body."
	ErrMsgInvalidRentalID    = "Rental id must be a positive integer."
	ErrMsgInvalidUserID      = "userId must be a positive integer."
	ErrMsgInvalidMovieID     = "moviesId must contain only positive integers."
	ErrMsgNoMovies           = "moviesId must not be empty."

	paramRentalID = "id"
)

// Handler обработчик HTTP-запросов для работы с прокатами.
type Handler struct {
	rentals api.RentalUseCase
}

// NewHandler создает новый экземпляр обработчика прокатов.
func NewHandler(rentals api.RentalUseCase) *Handler {
	return &Handler{rentals: rentals}
}

// CreateRental обрабатывает POST /rentals.
func (h *Handler) CreateRental(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateRental"))
	log.Debug(requestCtx, LogHandlerCreateRental)

	var req CreateRentalRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return unprocessable(ctx, ErrMsgInvalidRequestBody)
	}
	if msg := req.validate(); msg != "" {
		log.Debug(requestCtx, msg)
		return unprocessable(ctx, msg)
	}

	rental, err := h.rentals.CreateRental(requestCtx, entities.RentalInput{
		UserID:   req.UserID,
		MoviesID: req.MoviesID,
	})
	if err != nil {
		log.Debug(requestCtx, LogRequestRejected, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(rental); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListRentals обрабатывает GET /rentals.
func (h *Handler) ListRentals(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListRentals"))
	log.Debug(requestCtx, LogHandlerListRentals)

	rentals, err := h.rentals.GetRentals(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}

	if err := ctx.JSON(rentals); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetRental обрабатывает GET /rentals/:id.
func (h *Handler) GetRental(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetRental"))
	log.Debug(requestCtx, LogHandlerGetRental)

	id, ok := rentalID(ctx)
	if !ok {
		return unprocessable(ctx, ErrMsgInvalidRentalID)
	}

	rental, err := h.rentals.GetRentalByID(requestCtx, id)
	if err != nil {
		log.Debug(requestCtx, LogRequestRejected, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(rental); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// FinishRental обрабатывает POST /rentals/:id/finish.
func (h *Handler) FinishRental(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.FinishRental"))
	log.Debug(requestCtx, LogHandlerFinishRental)

	id, ok := rentalID(ctx)
	if !ok {
		return unprocessable(ctx, ErrMsgInvalidRentalID)
	}

	rental, err := h.rentals.FinishRental(requestCtx, id)
	if err != nil {
		log.Debug(requestCtx, LogRequestRejected, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(rental); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func rentalID(ctx fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Params(paramRentalID), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
