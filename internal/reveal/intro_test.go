package reveal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/spotlight-site/internal/events"
)

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "phase-1", Phase1.String())
	assert.Equal(t, "phase-4", Phase4.String())
}

func TestIntroTransitions_Table(t *testing.T) {
	require.Len(t, IntroTransitions, 3)
	for i, tr := range IntroTransitions {
		assert.Equal(t, Phase(i+1), tr.From)
		assert.Equal(t, tr.From+1, tr.To, "transitions never skip a phase")
	}
}

func TestIntro_Run(t *testing.T) {
	clock := &immediateClock{}
	rec := &recorder{}
	in := NewIntro(WithIntroClock(clock), WithIntroEmitter(rec))

	assert.Equal(t, Phase1, in.Phase())
	require.NoError(t, in.Run(context.Background()))
	assert.Equal(t, Phase4, in.Phase())

	assert.Equal(t, []time.Duration{2 * time.Second, 1500 * time.Millisecond, time.Second}, clock.delays)

	var layers []string
	for _, e := range rec.all() {
		assert.Equal(t, EventIntroPhase, e.Type)
		var change PhaseChange
		require.NoError(t, e.Decode(&change))
		assert.Equal(t, change.From+1, change.To)
		layers = append(layers, change.Layer)
	}
	assert.Equal(t, []string{"phase-2", "phase-3", "phase-4"}, layers)
}

func TestIntro_NoReplay(t *testing.T) {
	in := NewIntro(WithIntroClock(&immediateClock{}))
	require.NoError(t, in.Run(context.Background()))

	err := in.Run(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.Equal(t, Phase4, in.Phase())
}

func TestIntro_CancelStopsFurtherEffects(t *testing.T) {
	clock := newManualClock()
	rec := &recorder{}
	in := NewIntro(WithIntroClock(clock), WithIntroEmitter(rec))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- in.Run(ctx)
	}()

	clock.tick <- time.Time{}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	assert.Equal(t, Phase2, in.Phase())
	assert.Len(t, rec.all(), 1)
}

func TestIntro_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := NewIntro(WithIntroClock(newManualClock()))
	err := in.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Phase1, in.Phase())
}

func TestIntro_EmitFailureDoesNotHaltSequence(t *testing.T) {
	bus := events.NewBus(nil)
	calls := 0
	bus.Subscribe(EventIntroPhase, events.HandlerFunc(func(context.Context, *events.Event) error {
		calls++
		return errors.New("layer missing")
	}))

	in := NewIntro(WithIntroClock(&immediateClock{}), WithIntroEmitter(bus))
	require.NoError(t, in.Run(context.Background()))

	assert.Equal(t, Phase4, in.Phase())
	assert.Equal(t, 3, calls)
}
