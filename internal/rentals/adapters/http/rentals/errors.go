package rentals

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"movierental/internal/rentals/domain/entities"
)

// Имена ошибок, которые формирует сам HTTP слой.
const (
	NameUnprocessableEntity = "UnprocessableEntityError"
	NameInternalServer      = "InternalServerError"
	NameBadRequest          = "BadRequestError"

	MsgInternalServer = "Internal server error"
)

var statusByKind = map[entities.ErrorKind]int{
	entities.KindNotFound:        fiber.StatusNotFound,
	entities.KindPendentRental:   fiber.StatusConflict,
	entities.KindMovieInRental:   fiber.StatusConflict,
	entities.KindInsufficientAge: fiber.StatusForbidden,
	entities.KindRentalClosed:    fiber.StatusConflict,
}

// StatusFor возвращает HTTP статус для вида доменной ошибки.
func StatusFor(kind entities.ErrorKind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

// handleError отдает доменную ошибку как {name, message}, остальные как 500.
func handleError(ctx fiber.Ctx, err error) error {
	var domainErr *entities.DomainError
	if errors.As(err, &domainErr) {
		return sendError(ctx, StatusFor(domainErr.Name), string(domainErr.Name), domainErr.Message)
	}
	return sendError(ctx, fiber.StatusInternalServerError, NameInternalServer, MsgInternalServer)
}

// ErrorHandler отдает ошибки, вернувшиеся из цепочки обработчиков, в формате
// ErrorResponse. Клиентские ошибки fiber сохраняют свой код.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return sendError(ctx, fiberErr.Code, NameBadRequest, fiberErr.Message)
	}
	return handleError(ctx, err)
}

func unprocessable(ctx fiber.Ctx, message string) error {
	return sendError(ctx, fiber.StatusUnprocessableEntity, NameUnprocessableEntity, message)
}

func sendError(ctx fiber.Ctx, status int, name, message string) error {
	if err := ctx.Status(status).JSON(ErrorResponse{Name: name, Message: message}); err != nil {
		return fmt.Errorf("error sending %d response: %w", status, err)
	}
	return nil
}
