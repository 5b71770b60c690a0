package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/generation"
)

func hintPayload(t *testing.T, itemID string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(hintRequestPayload{
		UserID:        uuid.New(),
		SessionID:     uuid.New(),
		QuestionIndex: 0,
		ItemID:        itemID,
	})
	require.NoError(t, err)
	return raw
}

func newHintFactory(t *testing.T, gen generation.Generator, cache MnemonicCache, sink HintSink) *HintGenerationTaskFactory {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return NewHintGenerationTaskFactory(cat, gen, cache, sink, slog.Default())
}

func TestHintGenerationTask_DeliversMnemonic(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{mnemonic: &domain.Mnemonic{Character: "あ", Mnemonic: "an antenna"}}
	sink := &fakeSink{}
	factory := newHintFactory(t, gen, nil, sink)

	task, err := factory.NewTask(hintPayload(t, "hiragana-a"))
	require.NoError(t, err)
	require.NoError(t, task.Execute(context.Background()))

	require.Len(t, sink.delivered, 1)
	assert.Equal(t, "an antenna", sink.delivered[0].Mnemonic)
	assert.Empty(t, sink.failures)
}

func TestHintGenerationTask_AuthFailure(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{err: fmt.Errorf("%w: bad key", generation.ErrInvalidCredential)}
	sink := &fakeSink{}
	factory := newHintFactory(t, gen, nil, sink)

	task, err := factory.NewTask(hintPayload(t, "hiragana-a"))
	require.NoError(t, err)

	err = task.Execute(context.Background())
	require.Error(t, err)
	require.Len(t, sink.failures, 1)
	assert.Equal(t, domain.HintFailureInvalidCredential, sink.failures[0])
	assert.Empty(t, sink.delivered)
}

func TestHintGenerationTask_GenericFailure(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{err: fmt.Errorf("%w: timeout", generation.ErrTransientFailure)}
	sink := &fakeSink{}
	factory := newHintFactory(t, gen, nil, sink)

	task, err := factory.NewTask(hintPayload(t, "kanji-one"))
	require.NoError(t, err)

	require.Error(t, task.Execute(context.Background()))
	require.Len(t, sink.failures, 1)
	assert.Equal(t, domain.HintFailureUnavailable, sink.failures[0])
}

func TestHintGenerationTask_MalformedResponseFailure(t *testing.T) {
	t.Parallel()

	// A malformed model payload is indistinguishable from any other
	// unavailability as far as the learner is concerned.
	gen := &fakeGenerator{err: fmt.Errorf("%w: not json", generation.ErrInvalidResponse)}
	sink := &fakeSink{}
	factory := newHintFactory(t, gen, nil, sink)

	task, err := factory.NewTask(hintPayload(t, "kanji-one"))
	require.NoError(t, err)

	require.Error(t, task.Execute(context.Background()))
	require.Len(t, sink.failures, 1)
	assert.Equal(t, domain.HintFailureUnavailable, sink.failures[0])
}

func TestHintGenerationTask_UnknownItem(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	sink := &fakeSink{}
	factory := newHintFactory(t, gen, nil, sink)

	task, err := factory.NewTask(hintPayload(t, "hiragana-nope"))
	require.NoError(t, err)

	require.Error(t, task.Execute(context.Background()))
	require.Len(t, sink.failures, 1)
	assert.Equal(t, 0, gen.calls)
}

func TestHintGenerationTask_CacheHitSkipsGenerator(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	sink := &fakeSink{}
	cache := newFakeCache()
	cache.entries["hiragana-a"] = &domain.Mnemonic{Character: "あ", Mnemonic: "cached"}
	factory := newHintFactory(t, gen, cache, sink)

	task, err := factory.NewTask(hintPayload(t, "hiragana-a"))
	require.NoError(t, err)
	require.NoError(t, task.Execute(context.Background()))

	assert.Equal(t, 0, gen.calls)
	require.Len(t, sink.delivered, 1)
	assert.Equal(t, "cached", sink.delivered[0].Mnemonic)
}

func TestHintGenerationTask_CacheErrorFallsThrough(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{mnemonic: &domain.Mnemonic{Character: "あ", Mnemonic: "fresh"}}
	sink := &fakeSink{}
	cache := newFakeCache()
	cache.getErr = fmt.Errorf("redis down")
	factory := newHintFactory(t, gen, cache, sink)

	task, err := factory.NewTask(hintPayload(t, "hiragana-a"))
	require.NoError(t, err)
	require.NoError(t, task.Execute(context.Background()))

	assert.Equal(t, 1, gen.calls)
	require.Len(t, sink.delivered, 1)
}

func TestHintGenerationTask_SuccessPopulatesCache(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{mnemonic: &domain.Mnemonic{Character: "一", Mnemonic: "one stroke"}}
	sink := &fakeSink{}
	cache := newFakeCache()
	factory := newHintFactory(t, gen, cache, sink)

	task, err := factory.NewTask(hintPayload(t, "kanji-one"))
	require.NoError(t, err)
	require.NoError(t, task.Execute(context.Background()))

	require.NotNil(t, cache.entries["kanji-one"])
	assert.Equal(t, "one stroke", cache.entries["kanji-one"].Mnemonic)
}

func TestHintGenerationTaskFactory_InvalidPayload(t *testing.T) {
	t.Parallel()

	factory := newHintFactory(t, &fakeGenerator{}, nil, &fakeSink{})

	_, err := factory.NewTask(json.RawMessage(`not json`))
	assert.Error(t, err)

	_, err = factory.NewTask(json.RawMessage(`{}`))
	assert.Error(t, err)

	raw, marshalErr := json.Marshal(hintRequestPayload{UserID: uuid.New(), SessionID: uuid.New()})
	require.NoError(t, marshalErr)
	_, err = factory.NewTask(raw)
	assert.ErrorContains(t, err, "missing item ID")
}
