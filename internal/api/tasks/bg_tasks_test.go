package tasks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"myflix/proj/internal/lib/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	bgTasks := New(logger.Discard(), 3, 10)
	bgTasks.Run()
	var runs atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, bgTasks.Add(func() { runs.Add(1) }))
	}
	require.NoError(t, bgTasks.Shutdown(context.Background()))
	assert.Equal(t, int32(5), runs.Load())
	assert.True(t, bgTasks.IsEmpty())
}

func TestPanickingTaskKeepsWorker(t *testing.T) {
	bgTasks := New(logger.Discard(), 1, 10)
	bgTasks.Run()
	var ran atomic.Bool
	require.NoError(t, bgTasks.Add(func() { panic("boom") }))
	require.NoError(t, bgTasks.Add(func() { ran.Store(true) }))
	require.NoError(t, bgTasks.Shutdown(context.Background()))
	assert.True(t, ran.Load())
}

func TestAddAfterShutdown(t *testing.T) {
	bgTasks := New(logger.Discard(), 1, 1)
	bgTasks.Run()
	require.NoError(t, bgTasks.Shutdown(context.Background()))
	assert.ErrorIs(t, bgTasks.Add(func() {}), ErrStopped)
}

func TestQueueFull(t *testing.T) {
	bgTasks := New(logger.Discard(), 1, 1)
	// workers not started, so the single slot stays occupied
	require.NoError(t, bgTasks.Add(func() {}))
	assert.ErrorIs(t, bgTasks.Add(func() {}), ErrQueueFull)
}

func TestShutdownTimeout(t *testing.T) {
	bgTasks := New(logger.Discard(), 1, 1)
	bgTasks.Run()
	release := make(chan struct{})
	defer close(release)
	require.NoError(t, bgTasks.Add(func() { <-release }))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, bgTasks.Shutdown(ctx), context.DeadlineExceeded)
}
