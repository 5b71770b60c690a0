package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/platform/logger"
	"github.com/mkurosawa/kotoba-api/internal/store"
	"github.com/mkurosawa/kotoba-api/internal/task"
)

// ExecuteFunc runs the business logic of a recovered task.
type ExecuteFunc func(ctx context.Context) error

// ExecutorResolver rebuilds the execution logic for a task loaded from the
// database, based on its type and persisted payload. Tasks of unknown type
// should return an error.
type ExecutorResolver func(taskType string, payload []byte) (ExecuteFunc, error)

// PostgresTaskStore implements the task.TaskStore interface using PostgreSQL.
type PostgresTaskStore struct {
	db      store.DBTX
	resolve ExecutorResolver
}

// NewPostgresTaskStore creates a new PostgresTaskStore. The resolver is used
// to make tasks loaded during recovery executable again; it may be nil for
// stores that only write.
func NewPostgresTaskStore(db store.DBTX, resolve ExecutorResolver) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresTaskStore{
		db:      db,
		resolve: resolve,
	}
}

var _ task.TaskStore = (*PostgresTaskStore)(nil)

// SaveTask persists a task to the database.
func (s *PostgresTaskStore) SaveTask(ctx context.Context, t task.Task) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (id, type, payload, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, query,
		t.ID(),
		t.Type(),
		t.Payload(),
		t.Status(),
		now,
	)
	if err != nil {
		log.Error("failed to save task",
			"task_id", t.ID(),
			"task_type", t.Type(),
			"error", err)
		return fmt.Errorf("failed to save task to database: %w", MapError(err))
	}

	return nil
}

// UpdateTaskStatus updates the status of a task in the database. Updating a
// task that no longer exists is a no-op.
func (s *PostgresTaskStore) UpdateTaskStatus(
	ctx context.Context,
	taskID uuid.UUID,
	status task.TaskStatus,
	errorMsg string,
) error {
	log := logger.FromContext(ctx)

	query := `
		UPDATE tasks
		SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		status,
		errorMsg,
		time.Now().UTC(),
		taskID,
	)
	if err != nil {
		log.Error("failed to update task status",
			"task_id", taskID,
			"status", status,
			"error", err)
		return fmt.Errorf("failed to update task status: %w", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		log.Warn("no task found with ID to update status", "task_id", taskID)
	}

	return nil
}

// GetPendingTasks retrieves all tasks with pending status.
func (s *PostgresTaskStore) GetPendingTasks(ctx context.Context) ([]task.Task, error) {
	return s.getTasksByStatus(ctx, task.TaskStatusPending, 0)
}

// GetProcessingTasks retrieves tasks with processing status, optionally
// restricted to tasks not updated for longer than olderThan.
func (s *PostgresTaskStore) GetProcessingTasks(ctx context.Context, olderThan time.Duration) ([]task.Task, error) {
	return s.getTasksByStatus(ctx, task.TaskStatusProcessing, olderThan)
}

// WithTx implements task.TaskStore.WithTx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) task.TaskStore {
	return &PostgresTaskStore{
		db:      tx,
		resolve: s.resolve,
	}
}

func (s *PostgresTaskStore) getTasksByStatus(
	ctx context.Context,
	status task.TaskStatus,
	olderThan time.Duration,
) ([]task.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, type, payload, status
		FROM tasks
		WHERE status = $1
		ORDER BY created_at ASC
	`
	args := []interface{}{status}

	if olderThan > 0 {
		query = `
			SELECT id, type, payload, status
			FROM tasks
			WHERE status = $1 AND updated_at < $2
			ORDER BY created_at ASC
		`
		args = append(args, time.Now().UTC().Add(-olderThan))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks by status",
			"status", status,
			"error", err)
		return nil, fmt.Errorf("failed to query tasks by status: %w", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "error", err)
		}
	}()

	var tasks []task.Task
	for rows.Next() {
		t := &databaseTask{resolve: s.resolve}
		if err := rows.Scan(&t.id, &t.taskType, &t.payload, &t.status); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// databaseTask implements the task.Task interface for tasks loaded from the
// database. Execution logic is rebuilt lazily through the resolver.
type databaseTask struct {
	id       uuid.UUID
	taskType string
	payload  []byte
	status   task.TaskStatus
	resolve  ExecutorResolver
}

func (t *databaseTask) ID() uuid.UUID { return t.id }

func (t *databaseTask) Type() string { return t.taskType }

func (t *databaseTask) Payload() []byte { return t.payload }

func (t *databaseTask) Status() task.TaskStatus { return t.status }

// Execute rebuilds the task's logic from its persisted payload and runs it.
func (t *databaseTask) Execute(ctx context.Context) error {
	if t.resolve == nil {
		return fmt.Errorf("no executor resolver configured for recovered task %s", t.id)
	}
	run, err := t.resolve(t.taskType, t.payload)
	if err != nil {
		return fmt.Errorf("failed to rebuild task %s: %w", t.id, err)
	}
	return run(ctx)
}
