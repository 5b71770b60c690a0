package events

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	received []*TaskRequestEvent
	fail     error
}

func (h *recordingHandler) HandleEvent(_ context.Context, e *TaskRequestEvent) error {
	h.received = append(h.received, e)
	return h.fail
}

func TestNewTaskRequestEvent(t *testing.T) {
	t.Parallel()

	payload := map[string]string{"item_id": "hiragana-a"}
	event, err := NewTaskRequestEvent("hint_generation", payload)
	require.NoError(t, err)

	assert.Equal(t, "hint_generation", event.Type)
	assert.NotEqual(t, [16]byte{}, [16]byte(event.ID))
	assert.False(t, event.CreatedAt.IsZero())

	var decoded map[string]string
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestInMemoryEventEmitter_DeliversToAllHandlers(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEventEmitter(slog.Default())
	first := &recordingHandler{}
	second := &recordingHandler{}
	emitter.RegisterHandler(first)
	emitter.RegisterHandler(second)

	event, err := NewTaskRequestEvent("hint_generation", struct{}{})
	require.NoError(t, err)
	require.NoError(t, emitter.EmitEvent(context.Background(), event))

	assert.Len(t, first.received, 1)
	assert.Len(t, second.received, 1)
}

func TestInMemoryEventEmitter_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEventEmitter(slog.Default())
	failing := &recordingHandler{fail: errors.New("boom")}
	healthy := &recordingHandler{}
	emitter.RegisterHandler(failing)
	emitter.RegisterHandler(healthy)

	event, err := NewTaskRequestEvent("hint_generation", struct{}{})
	require.NoError(t, err)

	err = emitter.EmitEvent(context.Background(), event)
	assert.EqualError(t, err, "boom")
	assert.Len(t, healthy.received, 1, "healthy handler still receives the event")
}

func TestInMemoryEventEmitter_NoHandlers(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEventEmitter(slog.Default())
	event, err := NewTaskRequestEvent("hint_generation", struct{}{})
	require.NoError(t, err)
	assert.NoError(t, emitter.EmitEvent(context.Background(), event))
}
