// Package task runs background work: persisted tasks are queued in memory,
// processed by a worker pool, and recovered from the database after a
// restart. Its only workload today is mnemonic hint generation.
package task

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the persisted lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// TaskTypeHintGeneration identifies mnemonic generation tasks. The quiz
// package declares the same string when emitting events.
const TaskTypeHintGeneration = "hint_generation"

// Task is a unit of background work.
type Task interface {
	// ID returns the task's unique identifier.
	ID() uuid.UUID

	// Type returns the task type identifier.
	Type() string

	// Payload returns the task data as a byte slice.
	Payload() []byte

	// Status returns the current task status.
	Status() TaskStatus

	// Execute runs the task logic.
	Execute(ctx context.Context) error
}

// TaskStore persists tasks so queued work survives a process restart.
type TaskStore interface {
	// SaveTask persists a task.
	SaveTask(ctx context.Context, task Task) error

	// UpdateTaskStatus updates the status of a task, recording the error
	// message for failed tasks.
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status TaskStatus, errorMsg string) error

	// GetPendingTasks retrieves all tasks with pending status.
	GetPendingTasks(ctx context.Context) ([]Task, error)

	// GetProcessingTasks retrieves tasks with processing status. A non-zero
	// olderThan restricts the result to tasks stuck longer than that.
	GetProcessingTasks(ctx context.Context, olderThan time.Duration) ([]Task, error)

	// WithTx returns a TaskStore bound to the given transaction.
	WithTx(tx *sql.Tx) TaskStore
}
