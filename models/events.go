package models

import (
	"encoding/json"
	"time"
)

const (
	EventBookingCreated     = "booking.created"
	EventBookingStatus      = "booking.status"
	EventBookingRescheduled = "booking.rescheduled"
	EventBookingDeleted     = "booking.deleted"
	EventProfileUpdated     = "profile.updated"
	EventSessionEnded       = "session.ended"

	TopicBookings = "bookings"
)

// UserTopic is the realtime topic carrying changes for one user.
func UserTopic(userID string) string {
	return "user:" + userID
}

// Event is one realtime change notification.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
	At   time.Time       `json:"at"`
}

// NewEvent marshals data into an Event stamped now.
func NewEvent(eventType string, data any) (Event, error) {
	ev := Event{Type: eventType, At: time.Now()}
	if data == nil {
		return ev, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return ev, err
	}
	ev.Data = raw
	return ev, nil
}
