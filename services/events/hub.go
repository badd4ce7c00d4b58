package events

import (
	"context"
	"sync"

	"salonify/models"
)

// Hub fans realtime events out to subscribers of a topic.
type Hub interface {
	Publish(ctx context.Context, topic string, event models.Event) error
	Subscribe(ctx context.Context, topic string) (*Subscription, error)
}

// Subscription delivers events for one topic until Close is called or the
// context passed to Subscribe is canceled.
type Subscription struct {
	ch      chan models.Event
	done    chan struct{}
	once    sync.Once
	release func()
}

func newSubscription(buffer int, release func()) *Subscription {
	return &Subscription{
		ch:      make(chan models.Event, buffer),
		done:    make(chan struct{}),
		release: release,
	}
}

// Events is closed once the subscription ends.
func (s *Subscription) Events() <-chan models.Event {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		close(s.done)
		if s.release != nil {
			s.release()
		}
	})
}

// PublishJSON builds an event from data and publishes it on each topic.
// Failures are returned joined; callers usually just log them.
func PublishJSON(ctx context.Context, hub Hub, eventType string, data any, topics ...string) error {
	if hub == nil {
		return nil
	}
	ev, err := models.NewEvent(eventType, data)
	if err != nil {
		return err
	}
	var firstErr error
	for _, topic := range topics {
		if err := hub.Publish(ctx, topic, ev); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
