package events

import (
	"context"
	"testing"
	"time"

	"salonify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) models.Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "subscription closed early")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return models.Event{}
}

func TestLocalHubDeliversToTopicSubscribers(t *testing.T) {
	hub := NewLocalHub()
	ctx := context.Background()

	bookings, err := hub.Subscribe(ctx, models.TopicBookings)
	require.NoError(t, err)
	defer bookings.Close()
	other, err := hub.Subscribe(ctx, models.UserTopic("u-1"))
	require.NoError(t, err)
	defer other.Close()

	require.NoError(t, PublishJSON(ctx, hub, models.EventBookingCreated,
		map[string]string{"bookingId": "b-1"}, models.TopicBookings))

	ev := receive(t, bookings)
	assert.Equal(t, models.EventBookingCreated, ev.Type)
	assert.JSONEq(t, `{"bookingId":"b-1"}`, string(ev.Data))

	select {
	case ev := <-other.Events():
		t.Fatalf("unexpected event on other topic: %v", ev)
	default:
	}
}

func TestLocalHubCloseEndsSubscription(t *testing.T) {
	hub := NewLocalHub()
	sub, err := hub.Subscribe(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount("t"))

	sub.Close()
	sub.Close()

	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.Equal(t, 0, hub.SubscriberCount("t"))
	require.NoError(t, hub.Publish(context.Background(), "t", models.Event{Type: "x"}))
}

func TestLocalHubContextCancelEndsSubscription(t *testing.T) {
	hub := NewLocalHub()
	ctx, cancel := context.WithCancel(context.Background())
	sub, err := hub.Subscribe(ctx, "t")
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed after cancel")
	}
}

func TestLocalHubSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewLocalHub()
	sub, err := hub.Subscribe(context.Background(), "t")
	require.NoError(t, err)
	defer sub.Close()

	for i := 0; i < subscriberBuffer*2; i++ {
		require.NoError(t, hub.Publish(context.Background(), "t", models.Event{Type: "x"}))
	}
	assert.Len(t, sub.Events(), subscriberBuffer)
}
