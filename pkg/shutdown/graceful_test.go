package shutdown_test

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierental/pkg/shutdown"
)

var errHookFailed = errors.New("hook failed")

func TestWaitExecutesHooksOnSignal(t *testing.T) {
	hook1Called := make(chan struct{})
	hook2Called := make(chan struct{})

	go shutdown.Wait(context.Background(), time.Second,
		func(_ context.Context) error {
			close(hook1Called)
			return nil
		},
		func(_ context.Context) error {
			close(hook2Called)
			return errHookFailed
		},
	)

	time.Sleep(100 * time.Millisecond)

	process, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, process.Signal(syscall.SIGTERM))

	for i, ch := range []chan struct{}{hook1Called, hook2Called} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Errorf("hook %d was not called", i+1)
		}
	}
}

func TestWaitOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	shutdown.Wait(ctx, time.Second, func(hookCtx context.Context) error {
		called = true
		assert.NoError(t, hookCtx.Err(), "hook context must outlive the canceled parent")
		return nil
	})

	assert.True(t, called)
}

func TestWaitRespectsTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slowHook := func(hookCtx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			return nil
		case <-hookCtx.Done():
			return hookCtx.Err()
		}
	}

	start := time.Now()
	shutdown.Wait(ctx, 200*time.Millisecond, slowHook)

	assert.Less(t, time.Since(start), time.Second)
}
