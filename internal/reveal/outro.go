package reveal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/spotlight-site/internal/events"
)

// EventOutroState is published when the outro changes state.
const EventOutroState = "outro.state"

// OutroState is whether the outro panels are showing.
type OutroState int

// Outro states.
const (
	Hidden OutroState = iota
	Revealed
)

func (s OutroState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("outro_state(%d)", int(s))
	}
}

// Trigger is a scroll boundary crossing reported by the host.
type Trigger int

// Scroll triggers.
const (
	Enter Trigger = iota
	Leave
	EnterBack
	LeaveBack
)

func (t Trigger) String() string {
	switch t {
	case Enter:
		return "enter"
	case Leave:
		return "leave"
	case EnterBack:
		return "enter_back"
	case LeaveBack:
		return "leave_back"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// outroTable lists the edges that change state. Anything absent is a no-op.
var outroTable = map[OutroState]map[Trigger]OutroState{
	Hidden: {
		Enter:     Revealed,
		EnterBack: Revealed,
	},
	Revealed: {
		Leave: Hidden,
	},
}

// Reveal timeline. The form panel starts FormDelay into the options panel.
const (
	PanelDuration = 800 * time.Millisecond
	FormDelay     = 400 * time.Millisecond
	PanelOffset   = 32.0
)

// PanelState is the absolute visual state of one panel.
type PanelState struct {
	Opacity float64 `json:"opacity"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// OutroFrame is the state of both panels.
type OutroFrame struct {
	Options PanelState `json:"options"`
	Form    PanelState `json:"form"`
}

// HiddenFrame is the reset pose: both panels transparent and offset.
var HiddenFrame = OutroFrame{
	Options: PanelState{Opacity: 0, Y: PanelOffset},
	Form:    PanelState{Opacity: 0, X: PanelOffset},
}

// StateChange is the payload of EventOutroState.
type StateChange struct {
	From    OutroState `json:"from"`
	To      OutroState `json:"to"`
	Trigger string     `json:"trigger"`
}

// Outro tracks the outro section state.
type Outro struct {
	mu         sync.Mutex
	state      OutroState
	revealedAt time.Time

	clock   Clock
	emitter events.Emitter
	logger  *slog.Logger
}

// NewOutro creates a hidden outro. A nil clock uses the system clock and a
// nil emitter discards events.
func NewOutro(clock Clock, emitter events.Emitter, logger *slog.Logger) *Outro {
	if clock == nil {
		clock = SystemClock{}
	}
	if emitter == nil {
		emitter = events.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Outro{
		state:   Hidden,
		clock:   clock,
		emitter: emitter,
		logger:  logger.With("component", "outro_reveal"),
	}
}

// State returns the current state.
func (o *Outro) State() OutroState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Handle applies a trigger and reports the resulting state and whether it
// changed. Entering Revealed restarts the timeline from zero.
func (o *Outro) Handle(ctx context.Context, t Trigger) (OutroState, bool) {
	o.mu.Lock()
	from := o.state
	to, ok := outroTable[from][t]
	if !ok {
		o.mu.Unlock()
		return from, false
	}
	o.state = to
	if to == Revealed {
		o.revealedAt = o.clock.Now()
	}
	o.mu.Unlock()

	o.logger.Debug("outro state changed", "from", from.String(), "to", to.String(), "trigger", t.String())

	ev, err := events.New(EventOutroState, StateChange{From: from, To: to, Trigger: t.String()})
	if err == nil {
		err = o.emitter.Emit(ctx, ev)
	}
	if err != nil {
		o.logger.Error("failed to publish outro state", "error", err)
	}
	return to, true
}

// Frame samples the panels at the current clock time.
func (o *Outro) Frame() OutroFrame {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == Hidden {
		return HiddenFrame
	}
	return Sample(o.clock.Now().Sub(o.revealedAt))
}

// Sample returns the revealed timeline at elapsed time since the reveal
// started. The result depends only on elapsed.
func Sample(elapsed time.Duration) OutroFrame {
	opt := power2Out(progress(elapsed, 0))
	form := power2Out(progress(elapsed, FormDelay))
	return OutroFrame{
		Options: PanelState{Opacity: opt, Y: PanelOffset * (1 - opt)},
		Form:    PanelState{Opacity: form, X: PanelOffset * (1 - form)},
	}
}

// TimelineDuration is when the last panel finishes.
func TimelineDuration() time.Duration {
	return FormDelay + PanelDuration
}

func progress(elapsed, delay time.Duration) float64 {
	t := float64(elapsed-delay) / float64(PanelDuration)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// power2Out is the "power2.out" ease, a cubic ease-out.
func power2Out(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
