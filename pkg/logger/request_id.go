package logger

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxRequestIDLength - максимальная длина принимаемого извне идентификатора.
const MaxRequestIDLength = 128

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// ContextWithRequestID сохраняет в контексте идентификатор запроса и возвращает его.
// Пустой, слишком длинный или содержащий непечатаемые символы candidate
// заменяется новым UUID.
func ContextWithRequestID(ctx context.Context, candidate string) (context.Context, string) {
	id := strings.TrimSpace(candidate)
	if !validRequestID(id) {
		id = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey, id), id
}

// NewRequestIDContext создает новый контекст с идентификатором запроса.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	ctx, _ = ContextWithRequestID(ctx, requestID)
	return ctx
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GenerateRequestID генерирует новый идентификатор запроса.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID создает копию логгера с полем request_id, если оно есть в ctx.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	if id, ok := GetRequestID(ctx); ok {
		return l.With(zap.String(RequestID, id))
	}
	return l
}

func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for _, r := range id {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
