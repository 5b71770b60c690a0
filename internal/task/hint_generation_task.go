package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/generation"
)

// HintSink receives the outcome of a hint generation task. The quiz
// service implements it; deliveries that no longer match an awaiting
// question are discarded on the sink side.
type HintSink interface {
	DeliverHint(ctx context.Context, userID, sessionID uuid.UUID, questionIndex int, m *domain.Mnemonic)
	FailHint(ctx context.Context, userID, sessionID uuid.UUID, questionIndex int, failure domain.HintFailure)
}

// MnemonicCache caches generated mnemonics by item ID. Get returns
// (nil, nil) on a miss; cache errors are treated as misses by callers.
type MnemonicCache interface {
	Get(ctx context.Context, itemID string) (*domain.Mnemonic, error)
	Set(ctx context.Context, itemID string, m *domain.Mnemonic) error
}

// hintRequestPayload mirrors the JSON shape the quiz service emits.
type hintRequestPayload struct {
	UserID        uuid.UUID `json:"user_id"`
	SessionID     uuid.UUID `json:"session_id"`
	QuestionIndex int       `json:"question_index"`
	ItemID        string    `json:"item_id"`
}

// HintGenerationTask generates one mnemonic and delivers it to the session
// that asked for it. A generation failure still clears the session's
// pending state, with the failure kind telling the learner why.
type HintGenerationTask struct {
	id        uuid.UUID
	payload   []byte
	request   hintRequestPayload
	status    TaskStatus
	catalog   *catalog.Catalog
	generator generation.Generator
	cache     MnemonicCache
	sink      HintSink
	logger    *slog.Logger
}

// ID returns the task's unique identifier.
func (t *HintGenerationTask) ID() uuid.UUID { return t.id }

// Type returns TaskTypeHintGeneration.
func (t *HintGenerationTask) Type() string { return TaskTypeHintGeneration }

// Payload returns the raw request payload.
func (t *HintGenerationTask) Payload() []byte { return t.payload }

// Status returns the task's creation-time status. The runner owns
// lifecycle updates in the store.
func (t *HintGenerationTask) Status() TaskStatus { return t.status }

// Execute generates the mnemonic and delivers it. The cache is consulted
// first so repeated mistakes on the same item skip the remote call.
func (t *HintGenerationTask) Execute(ctx context.Context) error {
	item, ok := t.catalog.ByID(t.request.ItemID)
	if !ok {
		t.fail(ctx, domain.HintFailureUnavailable)
		return fmt.Errorf("unknown item %q", t.request.ItemID)
	}

	if t.cache != nil {
		cached, err := t.cache.Get(ctx, item.ID)
		if err != nil {
			t.logger.Warn("mnemonic cache read failed",
				slog.String("item_id", item.ID),
				slog.String("error", err.Error()))
		} else if cached != nil {
			t.logger.Debug("mnemonic cache hit", slog.String("item_id", item.ID))
			t.sink.DeliverHint(ctx, t.request.UserID, t.request.SessionID, t.request.QuestionIndex, cached)
			return nil
		}
	}

	m, err := t.generator.GenerateMnemonic(ctx, item)
	if err != nil {
		failure := domain.HintFailureUnavailable
		if errors.Is(err, generation.ErrInvalidCredential) {
			failure = domain.HintFailureInvalidCredential
		}
		t.fail(ctx, failure)
		return fmt.Errorf("generating mnemonic for %q: %w", item.ID, err)
	}

	if t.cache != nil {
		if err := t.cache.Set(ctx, item.ID, m); err != nil {
			t.logger.Warn("mnemonic cache write failed",
				slog.String("item_id", item.ID),
				slog.String("error", err.Error()))
		}
	}

	t.sink.DeliverHint(ctx, t.request.UserID, t.request.SessionID, t.request.QuestionIndex, m)
	return nil
}

func (t *HintGenerationTask) fail(ctx context.Context, failure domain.HintFailure) {
	t.sink.FailHint(ctx, t.request.UserID, t.request.SessionID, t.request.QuestionIndex, failure)
}

// HintGenerationTaskFactory builds hint tasks from event payloads.
type HintGenerationTaskFactory struct {
	catalog   *catalog.Catalog
	generator generation.Generator
	cache     MnemonicCache
	sink      HintSink
	logger    *slog.Logger
}

// NewHintGenerationTaskFactory creates the factory. cache may be nil to
// disable caching.
func NewHintGenerationTaskFactory(
	cat *catalog.Catalog,
	generator generation.Generator,
	cache MnemonicCache,
	sink HintSink,
	logger *slog.Logger,
) *HintGenerationTaskFactory {
	return &HintGenerationTaskFactory{
		catalog:   cat,
		generator: generator,
		cache:     cache,
		sink:      sink,
		logger:    logger.With(slog.String("component", "hint_generation_task")),
	}
}

// NewTask creates a task from a raw event payload.
func (f *HintGenerationTaskFactory) NewTask(payload json.RawMessage) (*HintGenerationTask, error) {
	var request hintRequestPayload
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hint request payload: %w", err)
	}
	if request.UserID == uuid.Nil || request.SessionID == uuid.Nil {
		return nil, errors.New("hint request payload missing user or session ID")
	}
	if request.ItemID == "" {
		return nil, errors.New("hint request payload missing item ID")
	}

	return &HintGenerationTask{
		id:        uuid.New(),
		payload:   payload,
		request:   request,
		status:    TaskStatusPending,
		catalog:   f.catalog,
		generator: f.generator,
		cache:     f.cache,
		sink:      f.sink,
		logger:    f.logger,
	}, nil
}

var _ Task = (*HintGenerationTask)(nil)
