package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	seen []string
	err  error
}

func (h *recordingHandler) HandleEvent(_ context.Context, e *Event) error {
	h.seen = append(h.seen, e.Type)
	return h.err
}

func TestNew(t *testing.T) {
	e, err := New("intro.phase", map[string]string{"layer": "phase-2"})
	require.NoError(t, err)

	assert.Equal(t, "intro.phase", e.Type)
	assert.NotEqual(t, [16]byte{}, [16]byte(e.ID))
	assert.False(t, e.CreatedAt.IsZero())

	var payload map[string]string
	require.NoError(t, e.Decode(&payload))
	assert.Equal(t, "phase-2", payload["layer"])
}

func TestNew_UnencodablePayload(t *testing.T) {
	_, err := New("broken", make(chan int))
	assert.Error(t, err)
}

func TestBus_Emit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no handlers", func(t *testing.T) {
		bus := NewBus(logger)
		e, err := New("outro.state", nil)
		require.NoError(t, err)
		assert.NoError(t, bus.Emit(context.Background(), e))
	})

	t.Run("filters by type", func(t *testing.T) {
		bus := NewBus(logger)
		intro := &recordingHandler{}
		all := &recordingHandler{}
		bus.Subscribe("intro.phase", intro)
		bus.Subscribe("", all)

		for _, typ := range []string{"intro.phase", "outro.state", "intro.phase"} {
			e, err := New(typ, nil)
			require.NoError(t, err)
			require.NoError(t, bus.Emit(context.Background(), e))
		}

		assert.Equal(t, []string{"intro.phase", "intro.phase"}, intro.seen)
		assert.Equal(t, []string{"intro.phase", "outro.state", "intro.phase"}, all.seen)
	})

	t.Run("failing handler does not stop delivery", func(t *testing.T) {
		bus := NewBus(logger)
		boom := errors.New("boom")
		failing := &recordingHandler{err: boom}
		ok := &recordingHandler{}
		bus.Subscribe("", failing)
		bus.Subscribe("", ok)

		e, err := New("intro.phase", nil)
		require.NoError(t, err)

		err = bus.Emit(context.Background(), e)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, ok.seen, 1)
	})

	t.Run("handler func", func(t *testing.T) {
		bus := NewBus(logger)
		var got *Event
		bus.Subscribe("x", HandlerFunc(func(_ context.Context, e *Event) error {
			got = e
			return nil
		}))

		e, err := New("x", 1)
		require.NoError(t, err)
		require.NoError(t, bus.Emit(context.Background(), e))
		assert.Same(t, e, got)
	})
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Emit(context.Background(), &Event{Type: "any"}))
}
