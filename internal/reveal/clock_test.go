package reveal

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/spotlight-site/internal/events"
)

// immediateClock fires every timer at once and records the requested delays.
type immediateClock struct {
	mu     sync.Mutex
	now    time.Time
	delays []time.Duration
}

func (c *immediateClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *immediateClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

func (c *immediateClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// manualClock fires a timer only when the test sends on tick.
type manualClock struct {
	tick chan time.Time
}

func newManualClock() *manualClock {
	return &manualClock{tick: make(chan time.Time)}
}

func (c *manualClock) Now() time.Time { return time.Time{} }

func (c *manualClock) After(time.Duration) <-chan time.Time { return c.tick }

// recorder collects published events.
type recorder struct {
	mu     sync.Mutex
	events []*events.Event
}

func (r *recorder) Emit(_ context.Context, e *events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) all() []*events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*events.Event(nil), r.events...)
}
