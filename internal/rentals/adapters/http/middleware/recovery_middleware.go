package middleware

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"movierental/pkg/logger"
)

// LogPanicRecovered - сообщение о перехваченной панике.
const LogPanicRecovered = "handler panic recovered"

// ErrPanicRecovered оборачивает значение паники обработчика.
var ErrPanicRecovered = errors.New("handler panicked")

// NewRecoveryMiddleware превращает панику обработчика в ошибку ErrPanicRecovered,
// которую отрисовывает ErrorHandler приложения.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			requestCtx := RequestContext(ctx)
			logger.Log(requestCtx).Error(requestCtx, LogPanicRecovered,
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))

			err = fmt.Errorf("%w: %v", ErrPanicRecovered, r)
		}()

		return ctx.Next()
	}
}
