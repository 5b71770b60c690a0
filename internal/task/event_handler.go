package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkurosawa/kotoba-api/internal/events"
)

// HintEventHandler turns hint request events into persisted background
// tasks. It is registered with the event emitter at startup.
type HintEventHandler struct {
	factory *HintGenerationTaskFactory
	runner  *TaskRunner
	logger  *slog.Logger
}

// NewHintEventHandler creates the handler.
func NewHintEventHandler(factory *HintGenerationTaskFactory, runner *TaskRunner, logger *slog.Logger) *HintEventHandler {
	return &HintEventHandler{
		factory: factory,
		runner:  runner,
		logger:  logger.With(slog.String("component", "hint_event_handler")),
	}
}

// HandleEvent creates and submits a hint generation task. Events of other
// types are ignored.
func (h *HintEventHandler) HandleEvent(ctx context.Context, event *events.TaskRequestEvent) error {
	if event.Type != TaskTypeHintGeneration {
		h.logger.Debug("ignoring event with unsupported type",
			slog.String("event_type", event.Type),
			slog.String("event_id", event.ID.String()))
		return nil
	}

	t, err := h.factory.NewTask(event.Payload)
	if err != nil {
		h.logger.Error("failed to create hint generation task",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return fmt.Errorf("failed to create task: %w", err)
	}

	if err := h.runner.Submit(ctx, t); err != nil {
		h.logger.Error("failed to submit hint generation task",
			slog.String("error", err.Error()),
			slog.String("task_id", t.ID().String()),
			slog.String("event_id", event.ID.String()))
		return fmt.Errorf("failed to submit task: %w", err)
	}

	h.logger.Debug("hint generation task submitted",
		slog.String("task_id", t.ID().String()),
		slog.String("event_id", event.ID.String()))
	return nil
}

var _ events.EventHandler = (*HintEventHandler)(nil)
