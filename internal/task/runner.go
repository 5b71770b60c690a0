package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// TaskRunnerConfig configures the background task runner.
type TaskRunnerConfig struct {
	// WorkerCount is the number of concurrent workers processing tasks.
	WorkerCount int

	// QueueSize is the buffer size of the in-memory task queue.
	QueueSize int

	// StuckTaskAge is how long a task may sit in processing state before
	// it is considered stuck and reset.
	StuckTaskAge time.Duration

	// StuckTaskCheckInterval is how often stuck tasks are checked for.
	StuckTaskCheckInterval time.Duration
}

// DefaultTaskRunnerConfig returns reasonable defaults.
func DefaultTaskRunnerConfig() TaskRunnerConfig {
	return TaskRunnerConfig{
		WorkerCount:            2,
		QueueSize:              100,
		StuckTaskAge:           30 * time.Minute,
		StuckTaskCheckInterval: 5 * time.Minute,
	}
}

// TaskRunner persists submitted tasks, queues them, and processes them with
// a pool of workers. Tasks interrupted by a crash are recovered on Start.
type TaskRunner struct {
	store      TaskStore
	queue      *TaskQueue
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	config     TaskRunnerConfig
	logger     *slog.Logger
	errHandler func(task Task, err error)
}

// NewTaskRunner creates a TaskRunner backed by the given store.
func NewTaskRunner(store TaskStore, config TaskRunnerConfig, logger *slog.Logger) *TaskRunner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 1
	}
	if config.StuckTaskCheckInterval == 0 {
		config.StuckTaskCheckInterval = 5 * time.Minute
	}

	runnerLogger := logger.With(slog.String("component", "task_runner"))
	ctx, cancel := context.WithCancel(context.Background())

	return &TaskRunner{
		store:      store,
		queue:      NewTaskQueue(config.QueueSize, logger),
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     runnerLogger,
		errHandler: func(task Task, err error) {
			runnerLogger.Error("task execution failed",
				slog.String("task_id", task.ID().String()),
				slog.String("task_type", task.Type()),
				slog.String("error", err.Error()))
		},
	}
}

// SetErrorHandler replaces the default log-only failure handler.
func (r *TaskRunner) SetErrorHandler(handler func(task Task, err error)) {
	r.errHandler = handler
}

// Submit persists the task and enqueues it for processing. The task is
// durable once Submit returns; a full queue leaves it pending for recovery.
func (r *TaskRunner) Submit(ctx context.Context, task Task) error {
	if err := r.store.SaveTask(ctx, task); err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	if err := r.queue.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	return nil
}

// Start recovers unfinished tasks and launches the workers.
func (r *TaskRunner) Start() error {
	if err := r.recover(); err != nil {
		return fmt.Errorf("failed to recover tasks: %w", err)
	}

	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}

	r.wg.Add(1)
	go r.stuckTaskMonitor()

	return nil
}

// Stop shuts the runner down, waiting for in-flight tasks to finish.
func (r *TaskRunner) Stop() {
	r.queue.Close()
	r.cancelFunc()
	r.wg.Wait()
}

// recover requeues tasks left over from a previous run: pending tasks go
// straight back on the queue, processing tasks are reset to pending first.
func (r *TaskRunner) recover() error {
	ctx := context.Background()

	pending, err := r.store.GetPendingTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending tasks: %w", err)
	}
	processing, err := r.store.GetProcessingTasks(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to get processing tasks: %w", err)
	}

	if len(pending)+len(processing) > 0 {
		r.logger.Info("recovering unfinished tasks",
			slog.Int("pending_count", len(pending)),
			slog.Int("processing_count", len(processing)))
	}

	for _, t := range pending {
		r.requeue(t)
	}
	for _, t := range processing {
		if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusPending, "reset after recovery"); err != nil {
			r.logger.Error("failed to reset processing task",
				slog.String("task_id", t.ID().String()),
				slog.String("error", err.Error()))
			continue
		}
		r.requeue(t)
	}
	return nil
}

func (r *TaskRunner) requeue(t Task) {
	if err := r.queue.Enqueue(t); err != nil {
		// Still pending in the store; the next restart picks it up.
		r.logger.Error("failed to requeue task",
			slog.String("task_id", t.ID().String()),
			slog.String("task_type", t.Type()),
			slog.String("error", err.Error()))
	}
}

func (r *TaskRunner) worker(id int) {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case t, ok := <-r.queue.Chan():
			if !ok {
				return
			}
			r.processTask(t, id)
		}
	}
}

func (r *TaskRunner) processTask(t Task, workerID int) {
	ctx := context.Background()
	logger := r.logger.With(
		slog.String("task_id", t.ID().String()),
		slog.String("task_type", t.Type()),
		slog.Int("worker_id", workerID),
	)

	if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusProcessing, ""); err != nil {
		logger.Error("failed to mark task processing", slog.String("error", err.Error()))
		return
	}

	if err := t.Execute(ctx); err != nil {
		logger.Error("task execution failed", slog.String("error", err.Error()))
		if updateErr := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusFailed, err.Error()); updateErr != nil {
			logger.Error("failed to mark task failed", slog.String("error", updateErr.Error()))
		}
		r.errHandler(t, err)
		return
	}

	if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusCompleted, ""); err != nil {
		logger.Error("failed to mark task completed", slog.String("error", err.Error()))
	}
}

// stuckTaskMonitor periodically resets tasks stuck in processing state,
// usually left behind by a worker that died mid-task.
func (r *TaskRunner) stuckTaskMonitor() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.StuckTaskCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			ctx := context.Background()
			stuck, err := r.store.GetProcessingTasks(ctx, r.config.StuckTaskAge)
			if err != nil {
				r.logger.Error("failed to check for stuck tasks", slog.String("error", err.Error()))
				continue
			}
			for _, t := range stuck {
				if err := r.store.UpdateTaskStatus(ctx, t.ID(), TaskStatusPending,
					"reset after being stuck in processing state"); err != nil {
					r.logger.Error("failed to reset stuck task",
						slog.String("task_id", t.ID().String()),
						slog.String("error", err.Error()))
					continue
				}
				r.requeue(t)
			}
		}
	}
}
