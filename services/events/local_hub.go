package events

import (
	"context"
	"sync"

	"salonify/models"
)

const subscriberBuffer = 16

// LocalHub is an in-process Hub. A subscriber that is not keeping up misses
// events instead of blocking the publisher.
type LocalHub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]*Subscription
}

func NewLocalHub() *LocalHub {
	return &LocalHub{subs: make(map[string]map[int]*Subscription)}
}

func (h *LocalHub) Publish(_ context.Context, topic string, event models.Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs[topic] {
		select {
		case sub.ch <- event:
		default:
		}
	}
	return nil
}

func (h *LocalHub) Subscribe(ctx context.Context, topic string) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	var sub *Subscription
	sub = newSubscription(subscriberBuffer, func() {
		h.mu.Lock()
		delete(h.subs[topic], id)
		if len(h.subs[topic]) == 0 {
			delete(h.subs, topic)
		}
		h.mu.Unlock()
		close(sub.ch)
	})

	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]*Subscription)
	}
	h.subs[topic][id] = sub

	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()
	return sub, nil
}

// SubscriberCount reports how many subscriptions are open on topic.
func (h *LocalHub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}
