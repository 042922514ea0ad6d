package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

type subscription struct {
	eventType string
	handler   Handler
}

// Bus is an in-process Emitter that dispatches synchronously.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	logger *slog.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger.With("component", "event_bus")}
}

// Subscribe registers h for eventType. An empty eventType matches all events.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{eventType: eventType, handler: h})
}

// Emit delivers event to every matching handler. A failing handler does not
// stop delivery; all handler errors are joined into the result.
func (b *Bus) Emit(ctx context.Context, event *Event) error {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	var errs []error
	delivered := 0
	for _, s := range subs {
		if s.eventType != "" && s.eventType != event.Type {
			continue
		}
		delivered++
		if err := s.handler.HandleEvent(ctx, event); err != nil {
			b.logger.Error("event handler failed",
				"error", err,
				"event_id", event.ID,
				"event_type", event.Type)
			errs = append(errs, err)
		}
	}

	if delivered == 0 {
		b.logger.Debug("no handlers for event", "event_type", event.Type)
	}
	return errors.Join(errs...)
}
