package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

type Task = func()

var (
	ErrQueueFull = errors.New("background task queue is full")
	ErrStopped   = errors.New("background tasks are shut down")
)

// BackgroundTasks runs fire-and-forget work (welcome mails) off the request
// path on a fixed number of workers.
type BackgroundTasks struct {
	log        *slog.Logger
	tasks      chan Task
	maxWorkers int
	wg         sync.WaitGroup
	mu         sync.RWMutex
	stopped    bool
}

func New(log *slog.Logger, maxWorkers int, maxTasksQueueSize int) *BackgroundTasks {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &BackgroundTasks{
		log:        log,
		maxWorkers: maxWorkers,
		tasks:      make(chan Task, maxTasksQueueSize),
	}
}

func (t *BackgroundTasks) Run() {
	t.wg.Add(t.maxWorkers)
	for i := 0; i < t.maxWorkers; i++ {
		go func(worker int) {
			defer t.wg.Done()
			log := t.log.With("worker", worker)
			for task := range t.tasks {
				t.runTask(log, task)
			}
		}(i)
	}
}

// runTask keeps a panicking task from taking its worker down with it.
func (t *BackgroundTasks) runTask(log *slog.Logger, task Task) {
	defer func() {
		if err := recover(); err != nil {
			log.Error("background task panicked", "err", err)
		}
	}()
	task()
	log.Debug("task done")
}

// Add enqueues task without blocking the caller.
func (t *BackgroundTasks) Add(task Task) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.stopped {
		return ErrStopped
	}
	select {
	case t.tasks <- task:
		return nil
	default:
		t.log.Warn("dropping background task", "reason", ErrQueueFull)
		return ErrQueueFull
	}
}

func (t *BackgroundTasks) Shutdown(ctx context.Context) error {
	const op = "tasks.BackgroundTasks.Shutdown"
	log := t.log.With("op", op)
	log.Info("shutting down background tasks")
	t.mu.Lock()
	if !t.stopped {
		t.stopped = true
		close(t.tasks)
	}
	t.mu.Unlock()
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		log.Warn("graceful shutdown timed out.. forcing exit", "timeout", ctx.Err())
		return ctx.Err()
	case <-done:
		log.Info("Background tasks succesfully stopped")
		return nil
	}
}

func (t *BackgroundTasks) IsEmpty() bool {
	return len(t.tasks) == 0
}
