package quiz

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/events"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// memoryProgressStore is an in-memory store.ProgressStore for service tests.
type memoryProgressStore struct {
	records  map[uuid.UUID]*domain.Progress
	saves    int
	failSave error
}

func newMemoryProgressStore() *memoryProgressStore {
	return &memoryProgressStore{records: make(map[uuid.UUID]*domain.Progress)}
}

func (m *memoryProgressStore) Get(_ context.Context, userID uuid.UUID) (*domain.Progress, error) {
	if p, ok := m.records[userID]; ok {
		return p.Clone(), nil
	}
	return domain.NewProgress(), nil
}

func (m *memoryProgressStore) Save(_ context.Context, userID uuid.UUID, p *domain.Progress) error {
	if m.failSave != nil {
		return m.failSave
	}
	m.saves++
	m.records[userID] = p.Clone()
	return nil
}

func (m *memoryProgressStore) WithTx(_ *sql.Tx) store.ProgressStore { return m }

// captureEmitter records emitted events instead of dispatching them.
type captureEmitter struct {
	events []*events.TaskRequestEvent
	fail   error
}

func (c *captureEmitter) EmitEvent(_ context.Context, e *events.TaskRequestEvent) error {
	if c.fail != nil {
		return c.fail
	}
	c.events = append(c.events, e)
	return nil
}

func newTestService(t *testing.T) (*Service, *memoryProgressStore, *captureEmitter) {
	t.Helper()
	ps := newMemoryProgressStore()
	em := &captureEmitter{}
	svc := NewService(ps, mustCatalog(t), em, slog.Default())
	svc.SetRandSource(testRand)
	return svc, ps, em
}

func TestService_StartSession(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	session, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)
	assert.Len(t, session.Questions, domain.CategorySessionLength)

	current, err := svc.CurrentSession(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, current.ID)
}

func TestService_NoActiveSession(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CurrentSession(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = svc.SubmitAnswer(ctx, uuid.New(), "a")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestService_SubmitCorrectAnswer(t *testing.T) {
	t.Parallel()

	svc, ps, em := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	q, err := svc.CurrentQuestion(ctx, userID)
	require.NoError(t, err)
	require.Contains(t, q.Options, q.Item.ExpectedAnswer())

	result, err := svc.SubmitAnswer(ctx, userID, q.Item.ExpectedAnswer())
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 1, result.Score)
	assert.False(t, result.HintRequested)

	// Progress was committed and no hint event was emitted.
	assert.Equal(t, 1, ps.saves)
	assert.Equal(t, 1, ps.records[userID].SuccessCount(q.Item.ID))
	assert.Empty(t, em.events)
}

func TestService_SubmitAnswerRetriesAfterFailedSave(t *testing.T) {
	t.Parallel()

	svc, ps, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	q, err := svc.CurrentQuestion(ctx, userID)
	require.NoError(t, err)

	ps.failSave = errors.New("connection reset")
	_, err = svc.SubmitAnswer(ctx, userID, q.Item.ExpectedAnswer())
	require.Error(t, err)

	// The failed write must not consume the question or advance the score.
	current, err := svc.CurrentSession(ctx, userID)
	require.NoError(t, err)
	assert.False(t, current.Answered)
	assert.Zero(t, current.Score)

	ps.failSave = nil
	result, err := svc.SubmitAnswer(ctx, userID, q.Item.ExpectedAnswer())
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 1, ps.saves)
	assert.Equal(t, 1, ps.records[userID].SuccessCount(q.Item.ID))
}

func TestService_CurrentQuestionOptionsStableAcrossPolls(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	first, err := svc.CurrentQuestion(ctx, userID)
	require.NoError(t, err)
	second, err := svc.CurrentQuestion(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.Options, second.Options)

	// Advancing moves to a question with its own option set.
	_, err = svc.SubmitAnswer(ctx, userID, first.Item.ExpectedAnswer())
	require.NoError(t, err)
	_, err = svc.Advance(ctx, userID)
	require.NoError(t, err)

	next, err := svc.CurrentQuestion(ctx, userID)
	require.NoError(t, err)
	assert.Contains(t, next.Options, next.Item.ExpectedAnswer())
}

func TestService_SubmitIncorrectAnswer(t *testing.T) {
	t.Parallel()

	svc, ps, em := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	session, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	q, err := svc.CurrentQuestion(ctx, userID)
	require.NoError(t, err)

	result, err := svc.SubmitAnswer(ctx, userID, "definitely wrong")
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, q.Item.ExpectedAnswer(), result.ExpectedAnswer)
	assert.True(t, result.HintRequested)

	// Progress committed before the hint event fired.
	assert.Equal(t, 1, ps.records[userID].MistakeCount(q.Item.ID))

	require.Len(t, em.events, 1)
	assert.Equal(t, TaskTypeHintGeneration, em.events[0].Type)
	var payload HintRequestPayload
	require.NoError(t, em.events[0].UnmarshalPayload(&payload))
	assert.Equal(t, userID, payload.UserID)
	assert.Equal(t, session.ID, payload.SessionID)
	assert.Equal(t, 0, payload.QuestionIndex)
	assert.Equal(t, q.Item.ID, payload.ItemID)

	// The hint is pending; re-answering the same question is gated.
	_, err = svc.SubmitAnswer(ctx, userID, "again")
	assert.ErrorIs(t, err, ErrHintPending)
}

func TestService_HintDelivery(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	session, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, userID, "wrong")
	require.NoError(t, err)

	m := &domain.Mnemonic{Character: "あ", Mnemonic: "looks like an antenna"}
	svc.DeliverHint(ctx, userID, session.ID, 0, m)

	current, err := svc.CurrentSession(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.HintStateReady, current.Hint.State)
	require.NotNil(t, current.Hint.Mnemonic)
	assert.Equal(t, "あ", current.Hint.Mnemonic.Character)
}

func TestService_StaleHintDiscarded(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	session, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, userID, "wrong")
	require.NoError(t, err)

	// The learner advances before the hint arrives.
	_, err = svc.Advance(ctx, userID)
	require.NoError(t, err)

	svc.DeliverHint(ctx, userID, session.ID, 0, &domain.Mnemonic{Character: "あ"})

	current, err := svc.CurrentSession(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.HintStateNone, current.Hint.State)
	assert.Nil(t, current.Hint.Mnemonic)
}

func TestService_HintAuthFailure(t *testing.T) {
	t.Parallel()

	svc, ps, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	session, err := svc.StartSession(ctx, userID, domain.CategoryKanji, false)
	require.NoError(t, err)

	q, err := svc.CurrentQuestion(ctx, userID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, userID, "wrong")
	require.NoError(t, err)
	progressBefore := ps.records[userID].Clone()

	svc.FailHint(ctx, userID, session.ID, 0, domain.HintFailureInvalidCredential)

	current, err := svc.CurrentSession(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.HintStateFailed, current.Hint.State)
	assert.Equal(t, domain.HintFailureInvalidCredential, current.Hint.Failure)

	// The failure cleared the pending gate without touching progress.
	assert.Equal(t, progressBefore.MistakeCount(q.Item.ID), ps.records[userID].MistakeCount(q.Item.ID))
	assert.Equal(t, progressBefore.SuccessCount(q.Item.ID), ps.records[userID].SuccessCount(q.Item.ID))

	// Advancing is still possible after a failed hint.
	_, err = svc.Advance(ctx, userID)
	assert.NoError(t, err)
}

func TestService_EmitFailureResolvesHintUnavailable(t *testing.T) {
	t.Parallel()

	svc, _, em := newTestService(t)
	em.fail = errors.New("queue full")
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	result, err := svc.SubmitAnswer(ctx, userID, "wrong")
	require.NoError(t, err, "emit failure must not fail the submission")
	assert.False(t, result.HintRequested)

	current, err := svc.CurrentSession(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.HintStateFailed, current.Hint.State)
	assert.Equal(t, domain.HintFailureUnavailable, current.Hint.Failure)
}

func TestService_CompleteSession(t *testing.T) {
	t.Parallel()

	svc, ps, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	session, err := svc.StartSession(ctx, userID, domain.CategoryHiragana, false)
	require.NoError(t, err)

	for i := 0; i < session.Length(); i++ {
		q, err := svc.CurrentQuestion(ctx, userID)
		require.NoError(t, err)

		_, err = svc.SubmitAnswer(ctx, userID, q.Item.ExpectedAnswer())
		require.NoError(t, err)

		current, err := svc.Advance(ctx, userID)
		require.NoError(t, err)
		if i == session.Length()-1 {
			assert.True(t, current.Completed)
		} else {
			assert.Equal(t, i+1, current.CurrentIndex)
		}
	}

	// Each submission persisted the whole record.
	assert.Equal(t, session.Length(), ps.saves)

	_, err = svc.SubmitAnswer(ctx, userID, "a")
	assert.ErrorIs(t, err, domain.ErrSessionCompleted)
}

func TestService_Abandon(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.StartSession(ctx, userID, domain.CategoryVocabulary, false)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, userID))

	_, err = svc.CurrentSession(ctx, userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}
