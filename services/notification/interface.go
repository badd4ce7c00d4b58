package notification

import (
	"context"

	"salonify/models"
)

// Messenger builds the WhatsApp messages that accompany booking changes.
type Messenger interface {
	NewBookingNotice(b models.Booking) models.Notice
	ApprovalNotice(b models.Booking) models.Notice
}

// Pusher delivers push notifications to the admin console devices.
type Pusher interface {
	NotifyAdmins(ctx context.Context, title, body string, data map[string]string) error
}

// Mailer sends HTML mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
	Enabled() bool
}
