// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"movierental/pkg/logger"
)

const (
	LogShutdownSignal  = "shutdown signal received"
	LogContextCanceled = "parent context canceled, shutting down"
	LogHookFailed      = "shutdown hook failed"
	LogShutdownTimeout = "shutdown timeout exceeded"
)

// Wait блокирует выполнение до получения сигнала SIGINT или SIGTERM (или отмены ctx),
// затем параллельно выполняет все хуки в рамках заданного timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...func(context.Context) error) {
	log := logger.Log(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		log.Info(ctx, LogShutdownSignal, zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info(ctx, LogContextCanceled)
	}

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var wgp sync.WaitGroup
	for _, hook := range hooks {
		wgp.Add(1)
		go func(fn func(context.Context) error) {
			defer wgp.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(hookCtx, LogHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wgp.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		log.Warn(hookCtx, LogShutdownTimeout, zap.Duration("timeout", timeout))
	}
}
