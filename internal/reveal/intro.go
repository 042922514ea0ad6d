package reveal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/spotlight-site/internal/events"
)

// EventIntroPhase is published each time the intro enters a new phase.
const EventIntroPhase = "intro.phase"

// ErrAlreadyStarted is returned when Run is called on an intro that has
// already run. The sequence never replays.
var ErrAlreadyStarted = errors.New("intro sequence already started")

// Phase is a step of the intro sequence.
type Phase int

// Intro phases in order.
const (
	Phase1 Phase = iota + 1
	Phase2
	Phase3
	Phase4
)

// String returns the layer name enabled on entering the phase.
func (p Phase) String() string {
	return fmt.Sprintf("phase-%d", int(p))
}

// Transition is one timed edge of the intro table.
type Transition struct {
	From  Phase
	To    Phase
	After time.Duration
}

// IntroTransitions is the full sequence. Each delay counts from entering From.
var IntroTransitions = []Transition{
	{From: Phase1, To: Phase2, After: 2 * time.Second},
	{From: Phase2, To: Phase3, After: 1500 * time.Millisecond},
	{From: Phase3, To: Phase4, After: time.Second},
}

// PhaseChange is the payload of EventIntroPhase.
type PhaseChange struct {
	From  Phase  `json:"from"`
	To    Phase  `json:"to"`
	Layer string `json:"layer"`
}

// Intro runs the phase sequence once.
type Intro struct {
	mu      sync.Mutex
	phase   Phase
	started bool

	clock   Clock
	emitter events.Emitter
	logger  *slog.Logger
}

// IntroOption configures an Intro.
type IntroOption func(*Intro)

// WithIntroClock replaces the system clock.
func WithIntroClock(c Clock) IntroOption {
	return func(in *Intro) {
		in.clock = c
	}
}

// WithIntroEmitter sets where phase changes are published.
func WithIntroEmitter(e events.Emitter) IntroOption {
	return func(in *Intro) {
		in.emitter = e
	}
}

// WithIntroLogger sets the logger.
func WithIntroLogger(l *slog.Logger) IntroOption {
	return func(in *Intro) {
		in.logger = l
	}
}

// NewIntro creates an intro in Phase1.
func NewIntro(opts ...IntroOption) *Intro {
	in := &Intro{
		phase:   Phase1,
		clock:   SystemClock{},
		emitter: events.Discard,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.logger = in.logger.With("component", "intro_reveal")
	return in
}

// Phase returns the current phase.
func (in *Intro) Phase() Phase {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.phase
}

// Run walks the transition table, waiting out each delay before entering the
// next phase and publishing its side effect. It returns nil once Phase4 is
// reached, or ctx.Err() if the context ends while waiting. A transition whose
// delay has elapsed is always completed, even if ctx ends during its effect.
func (in *Intro) Run(ctx context.Context) error {
	in.mu.Lock()
	if in.started {
		in.mu.Unlock()
		return ErrAlreadyStarted
	}
	in.started = true
	in.mu.Unlock()

	for _, tr := range IntroTransitions {
		select {
		case <-ctx.Done():
			in.logger.Debug("intro stopped", "phase", in.Phase().String())
			return ctx.Err()
		case <-in.clock.After(tr.After):
		}

		in.enter(ctx, tr)
	}
	return nil
}

func (in *Intro) enter(ctx context.Context, tr Transition) {
	in.mu.Lock()
	in.phase = tr.To
	in.mu.Unlock()

	in.logger.Debug("intro phase entered", "phase", tr.To.String())

	ev, err := events.New(EventIntroPhase, PhaseChange{From: tr.From, To: tr.To, Layer: tr.To.String()})
	if err == nil {
		err = in.emitter.Emit(context.WithoutCancel(ctx), ev)
	}
	if err != nil {
		in.logger.Error("failed to publish intro phase", "phase", tr.To.String(), "error", err)
	}
}
