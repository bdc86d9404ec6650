// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"movierental/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// LocalsRequestContext - ключ Locals, под которым хранится контекст запроса.
const LocalsRequestContext = "requestContext"

// NewRequestIDMiddleware берет идентификатор запроса из заголовка или
// генерирует новый, возвращает его клиенту и кладет контекст с ним в Locals.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, id := logger.ContextWithRequestID(ctx.Context(), ctx.Get(HeaderRequestID))

		ctx.Set(HeaderRequestID, id)
		ctx.Locals(LocalsRequestContext, requestCtx)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса, подготовленный NewRequestIDMiddleware.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
