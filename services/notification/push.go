package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// AdminTopic is the FCM topic the admin console devices subscribe to.
const AdminTopic = "admin-bookings"

// FCMPusher sends to AdminTopic. A nil client turns it into a no-op.
type FCMPusher struct {
	client *messaging.Client
	logger *zap.Logger
}

func NewFCMPusher(client *messaging.Client, logger *zap.Logger) *FCMPusher {
	return &FCMPusher{client: client, logger: logger}
}

func (p *FCMPusher) NotifyAdmins(ctx context.Context, title, body string, data map[string]string) error {
	if p == nil || p.client == nil {
		return nil
	}
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "admin"
	}

	msg := &messaging.Message{
		Topic: AdminTopic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	id, err := p.client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("NotifyAdmins: failed to send FCM message: %w", err)
	}
	p.logger.Debug("admin push sent", zap.String("messageID", id))
	return nil
}
