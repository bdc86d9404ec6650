// Package scheduler содержит фоновые задачи сервиса проката.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"movierental/internal/rentals/domain/entities"
	"movierental/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogMonitorStarted  = "overdue monitor started"
	LogMonitorStopped  = "overdue monitor stopped"
	LogCheckStarted    = "checking overdue rentals"
	LogCheckCompleted  = "overdue rentals check completed"
	LogRentalOverdue   = "rental is overdue"
	LogErrCheckFailed  = "overdue rentals check failed"
	ErrInvalidSchedule = "invalid overdue schedule"
	ErrStopTimeout     = "overdue monitor stop interrupted"
)

// OverdueFinder ищет открытые прокаты с истекшей датой окончания.
type OverdueFinder interface {
	FindOverdue(ctx context.Context, at time.Time) ([]*entities.Rental, error)
}

// OverdueMonitor периодически проверяет просроченные прокаты и пишет их в журнал.
// Сами прокаты не изменяются.
type OverdueMonitor struct {
	finder OverdueFinder
	spec   string
	now    func() time.Time
	cron   *cron.Cron
}

// NewOverdueMonitor создает монитор с расписанием spec в формате cron
// (поддерживаются дескрипторы вида "@every 1h").
func NewOverdueMonitor(finder OverdueFinder, spec string, now func() time.Time) *OverdueMonitor {
	if now == nil {
		now = time.Now
	}
	return &OverdueMonitor{
		finder: finder,
		spec:   spec,
		now:    now,
		cron:   cron.New(cron.WithLogger(cronLogger{})),
	}
}

// Start регистрирует задачу и запускает планировщик.
func (m *OverdueMonitor) Start(ctx context.Context) error {
	baseCtx := context.WithoutCancel(ctx)

	if _, err := m.cron.AddFunc(m.spec, func() {
		m.Run(logger.NewRequestIDContext(baseCtx, ""))
	}); err != nil {
		return fmt.Errorf("%s %q: %w", ErrInvalidSchedule, m.spec, err)
	}

	m.cron.Start()
	logger.Log(ctx).Info(ctx, LogMonitorStarted, zap.String("schedule", m.spec))
	return nil
}

// Stop останавливает планировщик и ждет завершения текущей проверки.
func (m *OverdueMonitor) Stop(ctx context.Context) error {
	done := m.cron.Stop()
	select {
	case <-done.Done():
		logger.Log(ctx).Info(ctx, LogMonitorStopped)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", ErrStopTimeout, ctx.Err())
	}
}

// Run выполняет одну проверку и возвращает число просроченных прокатов.
func (m *OverdueMonitor) Run(ctx context.Context) (int, error) {
	now := m.now()
	log := logger.Log(ctx).With(zap.String("job", "overdue"), zap.Time("at", now))
	log.Debug(ctx, LogCheckStarted)

	rentals, err := m.finder.FindOverdue(ctx, now)
	if err != nil {
		log.Error(ctx, LogErrCheckFailed, zap.Error(err))
		return 0, err
	}

	for _, rental := range rentals {
		log.Warn(ctx, LogRentalOverdue,
			zap.Int64("rentalID", rental.ID),
			zap.Int64("userID", rental.UserID),
			zap.Time("endDate", rental.EndDate))
	}

	log.Info(ctx, LogCheckCompleted, zap.Int("overdue", len(rentals)))
	return len(rentals), nil
}

// cronLogger направляет внутренние сообщения cron в logger сервиса.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	ctx := context.Background()
	logger.Log(ctx).Debug(ctx, msg, cronFields(keysAndValues)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	ctx := context.Background()
	logger.Log(ctx).Error(ctx, msg, append(cronFields(keysAndValues), zap.Error(err))...)
}

func cronFields(keysAndValues []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields = append(fields, zap.Any(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1]))
	}
	return fields
}
